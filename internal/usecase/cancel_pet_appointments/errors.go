package cancel_pet_appointments

import "errors"

var (
	// ErrInvalidPetID is returned for a non-positive pet ID
	ErrInvalidPetID = errors.New("cancel_pet_appointments: invalid pet id")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("cancel_pet_appointments: internal error")
)
