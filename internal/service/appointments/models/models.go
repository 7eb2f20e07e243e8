package models

import (
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
)

// GetClientAppointmentsRequest filters a client's appointment history.
type GetClientAppointmentsRequest struct {
	ClientID int64
	Status   *string
}

// GetScheduleRequest selects a window of the committed calendar.
type GetScheduleRequest struct {
	UserID   int64
	FromDate time.Time
	ToDate   time.Time
}

// AppointmentResponse is the read model of an appointment.
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PetID           int64     `json:"pet_id"`
	ClientID        int64     `json:"client_id"`
	ServiceID       int64     `json:"service_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	EmployeeID      *int64    `json:"employee_id,omitempty"`
	Status          string    `json:"status"`
	EditCount       int       `json:"edit_count"`
	EditsRemaining  int       `json:"edits_remaining"`
	FinalPrice      float64   `json:"final_price"`
	VoucherCode     *string   `json:"voucher_code,omitempty"`
	PetName         string    `json:"pet_name"`
	ServiceName     string    `json:"service_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ScheduleEntryResponse is one committed slot of the calendar.
type ScheduleEntryResponse struct {
	EmployeeID      int64     `json:"employee_id"`
	AppointmentID   int64     `json:"appointment_id"`
	ScheduledTime   time.Time `json:"scheduled_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ScheduleResponse is the committed calendar over a window.
type ScheduleResponse struct {
	Entries []*ScheduleEntryResponse `json:"entries"`
	Total   int                      `json:"total"`
}

// FromDomainAppointment converts a domain appointment to the read model.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		PetID:           a.PetID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime(),
		DurationMinutes: a.DurationMinutes,
		EmployeeID:      a.EmployeeID,
		Status:          string(a.Status),
		EditCount:       a.EditCount,
		EditsRemaining:  a.EditsRemaining(),
		FinalPrice:      a.FinalPrice,
		VoucherCode:     a.VoucherCode,
		PetName:         a.PetName,
		ServiceName:     a.ServiceName,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	list := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		list = append(list, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: list, Total: len(list)}
}

// FromDomainCalendarEntries converts calendar entries to the read model.
func FromDomainCalendarEntries(entries []*domain.CalendarEntry) *ScheduleResponse {
	list := make([]*ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, &ScheduleEntryResponse{
			EmployeeID:      e.EmployeeID,
			AppointmentID:   e.AppointmentID,
			ScheduledTime:   e.ScheduledTime,
			DurationMinutes: e.DurationMinutes,
		})
	}
	return &ScheduleResponse{Entries: list, Total: len(list)}
}
