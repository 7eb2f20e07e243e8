package cancel_pet_appointments

import (
	"context"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
)

// AppointmentRepository is the appointment repository interface.
type AppointmentRepository interface {
	ListActiveFutureByPet(ctx context.Context, petID int64, now time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// CalendarRepository is the calendar ledger repository interface.
type CalendarRepository interface {
	DeleteByAppointment(ctx context.Context, appointmentID int64) error
}

// TransactionManager runs the cascade in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits audit events after successful mutations.
type EventPublisher interface {
	AppointmentCancelled(ctx context.Context, appointmentID, actorID int64)
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
