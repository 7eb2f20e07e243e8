package book_appointment

import (
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
)

// validateRequest checks the request shape before any lookups.
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return ErrInvalidClientID
	}
	if req.PetID <= 0 {
		return ErrInvalidPetID
	}
	if req.ServiceID <= 0 {
		return ErrInvalidServiceID
	}
	if req.StartTime.IsZero() {
		return ErrInvalidStartTime
	}
	return nil
}

// validateSchedule applies the scheduling rules shared by booking and
// editing: future start, business day and hours, booking horizon, and the
// service's allowed start-time list.
func validateSchedule(service *domain.Service, start, now time.Time) error {
	if !start.After(now) {
		return ErrStartTimeInPast
	}
	if !domain.IsBusinessDay(start) || !domain.WithinBusinessHours(start) {
		return ErrOutsideBusinessHours
	}
	if !domain.WithinBookingHorizon(start, now) {
		return ErrBeyondBookingHorizon
	}
	if !service.AllowsStartTime(start) {
		return ErrStartTimeNotAllowed
	}
	return nil
}
