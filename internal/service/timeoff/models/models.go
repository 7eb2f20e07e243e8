package models

import (
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
)

// CreateRequest files a new time-off request for an employee.
type CreateRequest struct {
	EmployeeID int64
	StartTime  time.Time
	EndTime    time.Time
}

// DecideRequest approves or rejects a pending request.
type DecideRequest struct {
	ManagerID int64
	RequestID int64
	Approve   bool
}

// TimeOffResponse is the read model of a time-off request.
type TimeOffResponse struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

// FromDomainTimeOff converts a domain request to the read model.
func FromDomainTimeOff(r *domain.TimeOffRequest) *TimeOffResponse {
	return &TimeOffResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
	}
}
