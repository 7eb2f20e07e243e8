package cancel_appointment

import "errors"

var (
	// ErrInvalidAppointmentID is returned for a non-positive appointment ID
	ErrInvalidAppointmentID = errors.New("cancel_appointment: invalid appointment id")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrPermissionDenied is returned when the actor neither owns the appointment nor manages the salon
	ErrPermissionDenied = errors.New("cancel_appointment: permission denied")

	// ErrNotActive is returned when the appointment already reached a terminal state
	ErrNotActive = errors.New("cancel_appointment: appointment is not active")

	// ErrTooLate is returned when a client cancels within the 24-hour notice window
	ErrTooLate = errors.New("cancel_appointment: less than 24 hours before start")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("cancel_appointment: internal error")
)
