package timeoff

import "errors"

var (
	// ErrRequestNotFound is returned when the time-off request does not exist
	ErrRequestNotFound = errors.New("timeoff.service: time-off request not found")

	// ErrAccessDenied is returned for role violations
	ErrAccessDenied = errors.New("timeoff.service: access denied")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("timeoff.service: invalid input")

	// ErrAlreadyDecided is returned when the request is no longer pending
	ErrAlreadyDecided = errors.New("timeoff.service: request already decided")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("timeoff.service: internal error")
)
