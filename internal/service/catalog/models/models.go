package models

import (
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
)

// CreateServiceRequest defines a new grooming service.
type CreateServiceRequest struct {
	UserID            int64
	Name              string
	Description       *string
	DurationMinutes   int
	AllowedStartTimes string
}

// UpdateServiceRequest rewrites an existing service.
type UpdateServiceRequest struct {
	UserID            int64
	ServiceID         int64
	Name              string
	Description       *string
	DurationMinutes   int
	AllowedStartTimes string
	IsActive          bool
}

// SetPriceRequest sets the price for one (service, size) pair.
type SetPriceRequest struct {
	UserID    int64
	ServiceID int64
	Size      string
	Price     float64
}

// ServiceResponse is the read model of a catalog service.
type ServiceResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	DurationMinutes   int       `json:"duration_minutes"`
	AllowedStartTimes []string  `json:"allowed_start_times"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ServiceListResponse is a list of catalog services.
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// PriceResponse is one row of a service's price matrix.
type PriceResponse struct {
	ServiceID int64   `json:"service_id"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
}

// PriceListResponse is the full price matrix of a service.
type PriceListResponse struct {
	Prices []*PriceResponse `json:"prices"`
	Total  int              `json:"total"`
}

// FromDomainService converts a domain service to the read model.
func FromDomainService(s *domain.Service) *ServiceResponse {
	allowed := s.AllowedTimes()
	times := make([]string, 0, len(allowed))
	for _, t := range allowed {
		times = append(times, t.String())
	}
	return &ServiceResponse{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		DurationMinutes:   s.DurationMinutes,
		AllowedStartTimes: times,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// FromDomainServiceList converts a list of domain services.
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	list := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		list = append(list, FromDomainService(s))
	}
	return &ServiceListResponse{Services: list, Total: len(list)}
}

// FromDomainPrices converts a price matrix.
func FromDomainPrices(prices []*domain.ServicePrice) *PriceListResponse {
	list := make([]*PriceResponse, 0, len(prices))
	for _, p := range prices {
		list = append(list, &PriceResponse{
			ServiceID: p.ServiceID,
			Size:      string(p.Size),
			Price:     p.Price,
		})
	}
	return &PriceListResponse{Prices: list, Total: len(list)}
}
