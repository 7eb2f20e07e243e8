package time_off

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/timeoff/models"
)

// TimeOffService is the time-off interface.
type TimeOffService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.TimeOffResponse, error)
	Decide(ctx context.Context, req *models.DecideRequest) (*models.TimeOffResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
