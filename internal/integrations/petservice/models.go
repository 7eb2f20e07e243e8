package petservice

import "github.com/kerem-haeger/PetGroom-BookingService/internal/domain"

// PetStatus is the verification state of a pet profile. Independent of the
// appointment status vocabulary.
type PetStatus string

const (
	PetPending  PetStatus = "pending"
	PetVerified PetStatus = "verified"
	PetRejected PetStatus = "rejected"
)

// Pet is a pet profile as reported by the pet-profile service.
type Pet struct {
	ID      int64          `json:"id"`
	OwnerID int64          `json:"ownerId"`
	Name    string         `json:"name"`
	Breed   string         `json:"breed"`
	Size    domain.PetSize `json:"size"`
	Status  PetStatus      `json:"status"`
}

// IsVerified reports whether the profile has been approved for booking.
func (p *Pet) IsVerified() bool {
	return p.Status == PetVerified
}
