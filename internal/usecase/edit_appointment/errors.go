package edit_appointment

import "errors"

var (
	// ErrInvalidAppointmentID is returned for a non-positive appointment ID
	ErrInvalidAppointmentID = errors.New("edit_appointment: invalid appointment id")

	// ErrInvalidServiceID is returned for a non-positive service ID
	ErrInvalidServiceID = errors.New("edit_appointment: invalid service id")

	// ErrInvalidStartTime is returned for a missing start time
	ErrInvalidStartTime = errors.New("edit_appointment: invalid start time")

	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("edit_appointment: appointment not found")

	// ErrPermissionDenied is returned when the actor does not own the appointment
	ErrPermissionDenied = errors.New("edit_appointment: permission denied")

	// ErrNotEditable is returned for cancelled or completed appointments
	ErrNotEditable = errors.New("edit_appointment: appointment can no longer be edited")

	// ErrEditLimitReached is returned when the edit budget is spent
	ErrEditLimitReached = errors.New("edit_appointment: edit limit reached")

	// ErrTooLate is returned within the 24-hour notice window
	ErrTooLate = errors.New("edit_appointment: less than 24 hours before start")

	// ErrServiceNotFound is returned when the new service does not exist or is inactive
	ErrServiceNotFound = errors.New("edit_appointment: service not found")

	// ErrStartTimeNotAllowed is returned when the wall-clock time is not in the service's allowed list
	ErrStartTimeNotAllowed = errors.New("edit_appointment: start time not offered for this service")

	// ErrOutsideBusinessHours is returned for a start time outside 09:00-18:00 or on Sunday
	ErrOutsideBusinessHours = errors.New("edit_appointment: start time outside business hours")

	// ErrStartTimeInPast is returned when the new start is not in the future
	ErrStartTimeInPast = errors.New("edit_appointment: start time is in the past")

	// ErrBeyondBookingHorizon is returned for a start more than 90 days out
	ErrBeyondBookingHorizon = errors.New("edit_appointment: start time beyond booking horizon")

	// ErrDailyLimitReached is returned when the client already has the max active appointments that day
	ErrDailyLimitReached = errors.New("edit_appointment: daily appointment limit reached")

	// ErrPriceNotConfigured is returned when no price exists for the (service, pet size) pair
	ErrPriceNotConfigured = errors.New("edit_appointment: no price configured for service and pet size")

	// ErrNoEmployeeAvailable is returned when no groomer is free for the new window
	ErrNoEmployeeAvailable = errors.New("edit_appointment: no employee available for this slot")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("edit_appointment: internal error")
)
