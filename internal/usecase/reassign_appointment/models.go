package reassign_appointment

import "time"

// Request describes moving an approved appointment to another employee.
type Request struct {
	AppointmentID int64
	ManagerID     int64
	NewEmployeeID int64
}

// Response is the appointment after reassignment.
type Response struct {
	ID              int64
	EmployeeID      int64
	Status          string
	StartTime       time.Time
	DurationMinutes int
}
