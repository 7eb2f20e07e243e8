package reassign_appointment

import (
	"context"

	reassignAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reassign_appointment"
)

// ReassignAppointmentUseCase is the reassignment use case interface.
type ReassignAppointmentUseCase interface {
	Execute(ctx context.Context, req *reassignAppointment.Request) (*reassignAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
