package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrAccessDenied is returned when the user may not see the resource
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrInvalidInput is returned for malformed filters
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("appointments.service: internal error")
)
