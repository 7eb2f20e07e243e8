package get_schedule

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

// AppointmentsService is the appointment read service interface.
type AppointmentsService interface {
	GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
