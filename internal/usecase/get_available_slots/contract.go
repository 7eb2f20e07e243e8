package get_available_slots

import (
	"context"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// CatalogRepository is the service catalog repository interface.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CalendarRepository is the calendar ledger repository interface.
type CalendarRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEntry, error)
}

// TimeOffRepository is the time-off repository interface.
type TimeOffRepository interface {
	ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeOffRequest, error)
}

// IdentityServiceClient is the identity service client interface.
type IdentityServiceClient interface {
	ListEmployees(ctx context.Context) ([]*identityservice.Employee, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
