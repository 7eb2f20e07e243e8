package approve_appointment

import "errors"

var (
	// ErrInvalidAppointmentID is returned for a non-positive appointment ID
	ErrInvalidAppointmentID = errors.New("approve_appointment: invalid appointment id")

	// ErrInvalidEmployeeID is returned for a non-positive employee ID
	ErrInvalidEmployeeID = errors.New("approve_appointment: invalid employee id")

	// ErrPermissionDenied is returned when the actor is not a manager
	ErrPermissionDenied = errors.New("approve_appointment: permission denied")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("approve_appointment: appointment not found")

	// ErrNotPending is returned when the appointment is no longer pending
	ErrNotPending = errors.New("approve_appointment: appointment is not pending")

	// ErrEmployeeNotFound is returned when the employee is not on the roster
	ErrEmployeeNotFound = errors.New("approve_appointment: employee not found")

	// ErrEmployeeBusy is returned when the employee is booked or off during the window
	ErrEmployeeBusy = errors.New("approve_appointment: employee is not available for this slot")

	// ErrStartTimeInPast is returned when the appointment time has already passed
	ErrStartTimeInPast = errors.New("approve_appointment: appointment time is in the past")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("approve_appointment: internal error")
)
