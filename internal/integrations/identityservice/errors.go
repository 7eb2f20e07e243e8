package identityservice

import "errors"

var (
	// ErrUserNotFound is returned when the identity service has no such user
	ErrUserNotFound = errors.New("identityservice: user not found")

	// ErrInvalidResponse is returned for unexpected responses from the identity service
	ErrInvalidResponse = errors.New("identityservice: invalid response")

	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("identityservice: internal error")
)
