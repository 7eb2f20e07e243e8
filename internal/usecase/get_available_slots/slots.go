package get_available_slots

import (
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// buildDaySlots computes the availability of every allowed start time of
// the service on the given date. The date is assumed to carry the business
// location. Pure function: all state comes in as arguments.
func buildDaySlots(
	service *domain.Service,
	date time.Time,
	now time.Time,
	employeeIDs []int64,
	entries []*domain.CalendarEntry,
	timeOff []*domain.TimeOffRequest,
) []Slot {
	allowed := service.AllowedTimes()
	slots := make([]Slot, 0, len(allowed))

	for _, ts := range allowed {
		// AllowedTimes only yields well-formed values, so At cannot fail here
		start, err := ts.At(date, date.Location())
		if err != nil {
			continue
		}
		window := domain.Interval{Start: start, End: start.Add(service.Duration())}

		slots = append(slots, Slot{
			Time:      ts.String(),
			Available: slotAvailable(window, now, employeeIDs, entries, timeOff),
		})
	}

	return slots
}

// slotAvailable applies the scheduling rules to one candidate window:
// business day and hours, booking horizon, not in the past, and at least
// one employee free for the window.
func slotAvailable(
	window domain.Interval,
	now time.Time,
	employeeIDs []int64,
	entries []*domain.CalendarEntry,
	timeOff []*domain.TimeOffRequest,
) bool {
	if !domain.IsBusinessDay(window.Start) {
		return false
	}
	if !domain.WithinBusinessHours(window.Start) {
		return false
	}
	if !domain.WithinBookingHorizon(window.Start, now) {
		return false
	}
	if !window.Start.After(now) {
		return false
	}

	_, found := domain.FirstFreeEmployee(employeeIDs, window, entries, timeOff)
	return found
}

// employeeIDList flattens identity-service employees into IDs.
func employeeIDList(employees []*identityservice.Employee) []int64 {
	ids := make([]int64, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids
}
