package get_available_slots

import "errors"

var (
	// ErrInvalidServiceID is returned for a non-positive service ID
	ErrInvalidServiceID = errors.New("get_available_slots: invalid service id")

	// ErrInvalidDate is returned when the date cannot be used for lookup
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidDateRange is returned when the range end precedes the start
	ErrInvalidDateRange = errors.New("get_available_slots: invalid date range")

	// ErrServiceNotFound is returned when the service does not exist or is inactive
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
