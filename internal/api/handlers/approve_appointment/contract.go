package approve_appointment

import (
	"context"

	approveAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/approve_appointment"
)

// ApproveAppointmentUseCase is the approval use case interface.
type ApproveAppointmentUseCase interface {
	Execute(ctx context.Context, req *approveAppointment.Request) (*approveAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
