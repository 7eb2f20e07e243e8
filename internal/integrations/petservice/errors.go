package petservice

import "errors"

var (
	// ErrPetNotFound is returned when the pet-profile service has no such pet
	ErrPetNotFound = errors.New("petservice: pet not found")

	// ErrInvalidResponse is returned for unexpected responses from the pet-profile service
	ErrInvalidResponse = errors.New("petservice: invalid response")

	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("petservice: internal error")
)
