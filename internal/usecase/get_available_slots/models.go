package get_available_slots

import "time"

// Request describes a single-day availability lookup.
type Request struct {
	ServiceID int64
	Date      time.Time
}

// RangeRequest describes a multi-day availability lookup, dates inclusive.
type RangeRequest struct {
	ServiceID int64
	FromDate  time.Time
	ToDate    time.Time
}

// Slot is one candidate start time on the requested date.
type Slot struct {
	Time      string // HH:MM
	Available bool
}

// Response holds the availability of every allowed start time on one date.
type Response struct {
	ServiceID int64
	Date      time.Time
	Slots     []Slot
}

// RangeResponse holds per-day availability for a date range.
type RangeResponse struct {
	ServiceID int64
	Days      []*Response
}
