package reassign_appointment

import "errors"

var (
	// ErrInvalidAppointmentID is returned for a non-positive appointment ID
	ErrInvalidAppointmentID = errors.New("reassign_appointment: invalid appointment id")

	// ErrInvalidEmployeeID is returned for a non-positive employee ID
	ErrInvalidEmployeeID = errors.New("reassign_appointment: invalid employee id")

	// ErrPermissionDenied is returned when the actor is not a manager
	ErrPermissionDenied = errors.New("reassign_appointment: permission denied")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("reassign_appointment: appointment not found")

	// ErrNotApproved is returned when the appointment is not in approved status
	ErrNotApproved = errors.New("reassign_appointment: appointment is not approved")

	// ErrEmployeeNotFound is returned when the employee is not on the roster
	ErrEmployeeNotFound = errors.New("reassign_appointment: employee not found")

	// ErrEmployeeBusy is returned when the new employee is booked or off during the window
	ErrEmployeeBusy = errors.New("reassign_appointment: employee is not available for this slot")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("reassign_appointment: internal error")
)
