package edit_appointment

import (
	"context"

	editAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/edit_appointment"
)

// EditAppointmentUseCase is the edit use case interface.
type EditAppointmentUseCase interface {
	Execute(ctx context.Context, req *editAppointment.Request) (*editAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
