package approve_appointment

import "time"

// Request describes a manager approval with an employee assignment.
type Request struct {
	AppointmentID int64
	ManagerID     int64
	EmployeeID    int64
}

// Response is the appointment after approval.
type Response struct {
	ID              int64
	PetID           int64
	ClientID        int64
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int
	EmployeeID      int64
	Status          string
	FinalPrice      float64
	PetName         string
	ServiceName     string
}
