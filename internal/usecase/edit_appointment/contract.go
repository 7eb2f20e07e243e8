package edit_appointment

import (
	"context"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/petservice"
)

// AppointmentRepository is the appointment repository interface.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	CountActiveSameDay(ctx context.Context, clientID int64, dayStart, dayEnd time.Time, excludeID *int64) (int, error)
	UpdateSchedule(ctx context.Context, id int64, serviceID int64, startTime time.Time, durationMinutes int, serviceName string, finalPrice float64) error
}

// CatalogRepository is the service catalog repository interface.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetPrice(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServicePrice, error)
}

// CalendarRepository is the calendar ledger repository interface.
type CalendarRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEntry, error)
}

// TimeOffRepository is the time-off repository interface.
type TimeOffRepository interface {
	ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeOffRequest, error)
}

// PetServiceClient is the pet-profile service client interface.
type PetServiceClient interface {
	GetPet(ctx context.Context, petID int64) (*petservice.Pet, error)
}

// IdentityServiceClient is the identity service client interface.
type IdentityServiceClient interface {
	ListEmployees(ctx context.Context) ([]*identityservice.Employee, error)
}

// TransactionManager runs the edit write path in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits audit events after successful mutations.
type EventPublisher interface {
	AppointmentEdited(ctx context.Context, appointmentID, actorID int64)
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
