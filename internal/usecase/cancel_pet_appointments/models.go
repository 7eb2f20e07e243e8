package cancel_pet_appointments

// Request describes the cascade fired when a pet profile is removed.
// ActorID identifies who triggered the removal, for the audit trail.
type Request struct {
	PetID   int64
	ActorID int64
}

// Response reports how many appointments were cancelled. Past and terminal
// appointments are untouched: history survives the pet.
type Response struct {
	PetID          int64
	CancelledCount int
	CancelledIDs   []int64
}
