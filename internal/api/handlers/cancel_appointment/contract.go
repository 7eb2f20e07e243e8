package cancel_appointment

import (
	"context"

	cancelAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_appointment"
)

// CancelAppointmentUseCase is the cancellation use case interface.
type CancelAppointmentUseCase interface {
	Execute(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
