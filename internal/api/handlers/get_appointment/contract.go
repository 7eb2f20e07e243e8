package get_appointment

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

// AppointmentsService is the appointment read service interface.
type AppointmentsService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error)
	GetOverlapping(ctx context.Context, id int64, userID int64) (*models.AppointmentListResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
