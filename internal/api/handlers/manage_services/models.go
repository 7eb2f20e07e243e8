package manage_services

// CreateServiceRequest is the HTTP request model for a new service.
type CreateServiceRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	DurationMinutes   int     `json:"durationMinutes"`
	AllowedStartTimes string  `json:"allowedStartTimes"` // comma-separated HH:MM list
}

// UpdateServiceRequest is the HTTP request model for rewriting a service.
type UpdateServiceRequest struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	DurationMinutes   int     `json:"durationMinutes"`
	AllowedStartTimes string  `json:"allowedStartTimes"`
	IsActive          bool    `json:"isActive"`
}

// SetActiveRequest is the HTTP request model for toggling visibility.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// SetPriceRequest is the HTTP request model for one price matrix cell.
type SetPriceRequest struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}
