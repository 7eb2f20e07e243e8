package book_appointment

import (
	"context"

	bookAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/book_appointment"
)

// BookAppointmentUseCase is the booking use case interface.
type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
