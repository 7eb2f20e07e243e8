package book_appointment

import (
	"time"

	bookAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/book_appointment"
)

// BookAppointmentRequest is the HTTP request model.
type BookAppointmentRequest struct {
	PetID       int64   `json:"petId"`
	ServiceID   int64   `json:"serviceId"`
	StartTime   string  `json:"startTime"` // RFC 3339, e.g. "2026-09-14T11:30:00+01:00"
	VoucherCode *string `json:"voucherCode,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PetID           int64   `json:"petId"`
	ClientID        int64   `json:"clientId"`
	ServiceID       int64   `json:"serviceId"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	EditCount       int     `json:"editCount"`
	FinalPrice      float64 `json:"finalPrice"`
	VoucherCode     *string `json:"voucherCode,omitempty"`
	PetName         string  `json:"petName"`
	ServiceName     string  `json:"serviceName"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the start time.
func (r *BookAppointmentRequest) ToUseCaseRequest(clientID int64) (*bookAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	return &bookAppointment.Request{
		ClientID:    clientID,
		PetID:       r.PetID,
		ServiceID:   r.ServiceID,
		StartTime:   startTime,
		VoucherCode: r.VoucherCode,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PetID:           resp.PetID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		EditCount:       resp.EditCount,
		FinalPrice:      resp.FinalPrice,
		VoucherCode:     resp.VoucherCode,
		PetName:         resp.PetName,
		ServiceName:     resp.ServiceName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
