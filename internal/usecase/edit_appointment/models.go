package edit_appointment

import "time"

// Request describes a client edit: a new service and/or start time.
type Request struct {
	AppointmentID int64
	ClientID      int64
	ServiceID     int64
	StartTime     time.Time
}

// Response is the appointment after the edit. The status always drops back
// to pending: every edit requires fresh manager approval.
type Response struct {
	ID              int64
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int
	Status          string
	EditCount       int
	EditsRemaining  int
	FinalPrice      float64
	ServiceName     string
}
