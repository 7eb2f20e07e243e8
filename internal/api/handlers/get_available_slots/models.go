package get_available_slots

import (
	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	getAvailableSlots "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one candidate start time.
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DayResponse is the availability of one date.
type DayResponse struct {
	ServiceID int64          `json:"serviceId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// RangeResponse is per-day availability over a range.
type RangeResponse struct {
	ServiceID int64          `json:"serviceId"`
	Days      []*DayResponse `json:"days"`
}

// FromUseCaseResponse converts a use case day to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DayResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Time: s.Time, Available: s.Available})
	}
	return &DayResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}

// FromUseCaseRangeResponse converts a use case range to the HTTP model.
func FromUseCaseRangeResponse(resp *getAvailableSlots.RangeResponse) *RangeResponse {
	days := make([]*DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, FromUseCaseResponse(d))
	}
	return &RangeResponse{ServiceID: resp.ServiceID, Days: days}
}
