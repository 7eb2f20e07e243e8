package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase is the availability use case interface.
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
	ExecuteRange(ctx context.Context, req *getAvailableSlots.RangeRequest) (*getAvailableSlots.RangeResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
