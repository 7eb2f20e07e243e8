package reject_appointment

// Request describes a manager rejection of a pending appointment.
type Request struct {
	AppointmentID int64
	ManagerID     int64
}

// Response reports the resulting status. A rejected appointment keeps its
// edit budget: the client may still rework and resubmit it.
type Response struct {
	ID             int64
	Status         string
	EditsRemaining int
}
