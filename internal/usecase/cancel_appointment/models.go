package cancel_appointment

// Request describes a cancellation. Clients may cancel their own active
// appointments more than 24 hours out; managers may cancel any active
// appointment at any time.
type Request struct {
	AppointmentID int64
	ActorID       int64
}

// Response reports the resulting status.
type Response struct {
	ID     int64
	Status string
}
