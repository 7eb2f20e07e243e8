package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the ID
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateAppointment is returned when the (pet, start time) pair already exists
	ErrDuplicateAppointment = errors.New("appointment.repository: pet already booked at this time")

	// ErrNotPending is returned when a CAS update expected status=pending and found otherwise
	ErrNotPending = errors.New("appointment.repository: appointment is not pending")

	// ErrNotApproved is returned when a CAS update expected status=approved and found otherwise
	ErrNotApproved = errors.New("appointment.repository: appointment is not approved")

	// ErrNotEditable is returned when the guarded edit update matched no row
	ErrNotEditable = errors.New("appointment.repository: appointment is not editable")

	// ErrCannotCancel is returned when the appointment is no longer active
	ErrCannotCancel = errors.New("appointment.repository: appointment cannot be cancelled")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
