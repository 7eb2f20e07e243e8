package book_appointment

import "time"

// Request describes a client booking.
type Request struct {
	ClientID    int64
	PetID       int64
	ServiceID   int64
	StartTime   time.Time
	VoucherCode *string
}

// Response is the created appointment.
type Response struct {
	ID              int64
	PetID           int64
	ClientID        int64
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int
	Status          string
	EditCount       int
	FinalPrice      float64
	VoucherCode     *string
	PetName         string
	ServiceName     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
