package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches the ID
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrPriceNotFound is returned when no price exists for a (service, size) pair
	ErrPriceNotFound = errors.New("catalog.repository: price not found")

	// ErrDuplicateService is returned when a service name already exists
	ErrDuplicateService = errors.New("catalog.repository: service name already exists")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
