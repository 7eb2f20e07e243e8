package book_appointment

import "errors"

var (
	// ErrInvalidClientID is returned for a non-positive client ID
	ErrInvalidClientID = errors.New("book_appointment: invalid client id")

	// ErrInvalidPetID is returned for a non-positive pet ID
	ErrInvalidPetID = errors.New("book_appointment: invalid pet id")

	// ErrInvalidServiceID is returned for a non-positive service ID
	ErrInvalidServiceID = errors.New("book_appointment: invalid service id")

	// ErrInvalidStartTime is returned for a missing start time
	ErrInvalidStartTime = errors.New("book_appointment: invalid start time")

	// ErrPetNotFound is returned when the pet does not exist
	ErrPetNotFound = errors.New("book_appointment: pet not found")

	// ErrPetNotOwned is returned when the pet belongs to another client
	ErrPetNotOwned = errors.New("book_appointment: pet does not belong to client")

	// ErrPetNotVerified is returned when the pet profile has not been verified
	ErrPetNotVerified = errors.New("book_appointment: pet is not verified")

	// ErrServiceNotFound is returned when the service does not exist or is inactive
	ErrServiceNotFound = errors.New("book_appointment: service not found")

	// ErrStartTimeNotAllowed is returned when the wall-clock time is not in the service's allowed list
	ErrStartTimeNotAllowed = errors.New("book_appointment: start time not offered for this service")

	// ErrOutsideBusinessHours is returned for a start time outside 09:00-18:00 or on Sunday
	ErrOutsideBusinessHours = errors.New("book_appointment: start time outside business hours")

	// ErrStartTimeInPast is returned when the requested start is not in the future
	ErrStartTimeInPast = errors.New("book_appointment: start time is in the past")

	// ErrBeyondBookingHorizon is returned for a start more than 90 days out
	ErrBeyondBookingHorizon = errors.New("book_appointment: start time beyond booking horizon")

	// ErrDailyLimitReached is returned when the client already has the max active appointments that day
	ErrDailyLimitReached = errors.New("book_appointment: daily appointment limit reached")

	// ErrPriceNotConfigured is returned when no price exists for the (service, pet size) pair
	ErrPriceNotConfigured = errors.New("book_appointment: no price configured for service and pet size")

	// ErrVoucherInvalid is returned when the voucher is unknown, expired or already redeemed
	ErrVoucherInvalid = errors.New("book_appointment: voucher is invalid")

	// ErrNoEmployeeAvailable is returned when no groomer is free for the requested window
	ErrNoEmployeeAvailable = errors.New("book_appointment: no employee available for this slot")

	// ErrTimeSlotTaken is returned when the pet already has an appointment at this start time
	ErrTimeSlotTaken = errors.New("book_appointment: pet already booked at this time")

	// ErrInternal is returned for infrastructure failures
	ErrInternal = errors.New("book_appointment: internal error")
)
