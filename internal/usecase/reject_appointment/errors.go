package reject_appointment

import "errors"

var (
	// ErrInvalidAppointmentID is returned for a non-positive appointment ID
	ErrInvalidAppointmentID = errors.New("reject_appointment: invalid appointment id")

	// ErrPermissionDenied is returned when the actor is not a manager
	ErrPermissionDenied = errors.New("reject_appointment: permission denied")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("reject_appointment: appointment not found")

	// ErrNotPending is returned when the appointment is no longer pending
	ErrNotPending = errors.New("reject_appointment: appointment is not pending")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("reject_appointment: internal error")
)
