package appointments

import (
	"context"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// AppointmentRepository is the appointment repository interface.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByClient(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	ListApprovedAssignedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// CalendarRepository is the calendar ledger repository interface.
type CalendarRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEntry, error)
}

// IdentityServiceClient is the identity service client interface.
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
