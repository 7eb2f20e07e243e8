package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrAccessDenied is returned when the user is not a manager
	ErrAccessDenied = errors.New("catalog.service: access denied")

	// ErrInvalidInput is returned for malformed service or price definitions
	ErrInvalidInput = errors.New("catalog.service: invalid input")

	// ErrPriceNotFound is returned when no price is configured for the size
	ErrPriceNotFound = errors.New("catalog.service: price not configured for this size")

	// ErrDuplicateService is returned when the service name already exists
	ErrDuplicateService = errors.New("catalog.service: service name already exists")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("catalog.service: internal error")
)
