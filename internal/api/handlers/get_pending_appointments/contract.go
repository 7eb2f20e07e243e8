package get_pending_appointments

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

// AppointmentsService is the appointment read service interface.
type AppointmentsService interface {
	GetPendingAppointments(ctx context.Context, userID int64) (*models.AppointmentListResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
