package approve_appointment

import (
	"context"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// AppointmentRepository is the appointment repository interface.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Approve(ctx context.Context, id int64, employeeID int64) error
}

// CalendarRepository is the calendar ledger repository interface.
type CalendarRepository interface {
	Upsert(ctx context.Context, e *domain.CalendarEntry) error
	ExistsAt(ctx context.Context, employeeID int64, from, to time.Time, excludeAppointmentID *int64) (bool, error)
}

// TimeOffRepository is the time-off repository interface.
type TimeOffRepository interface {
	ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeOffRequest, error)
}

// IdentityServiceClient is the identity service client interface.
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
	ListEmployees(ctx context.Context) ([]*identityservice.Employee, error)
}

// TransactionManager runs the approval write path in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits audit events after successful mutations.
type EventPublisher interface {
	AppointmentApproved(ctx context.Context, appointmentID, actorID int64)
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
