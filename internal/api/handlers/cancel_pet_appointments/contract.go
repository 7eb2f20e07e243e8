package cancel_pet_appointments

import (
	"context"

	cancelPetAppointments "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_pet_appointments"
)

// CancelPetAppointmentsUseCase is the cascade-cancellation use case interface.
type CancelPetAppointmentsUseCase interface {
	Execute(ctx context.Context, req *cancelPetAppointments.Request) (*cancelPetAppointments.Response, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
