package get_client_appointments

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

// AppointmentsService is the appointment read service interface.
type AppointmentsService interface {
	GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
