package reject_appointment

import (
	"context"

	rejectAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reject_appointment"
)

// RejectAppointmentUseCase is the rejection use case interface.
type RejectAppointmentUseCase interface {
	Execute(ctx context.Context, req *rejectAppointment.Request) (*rejectAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
