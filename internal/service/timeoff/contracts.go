package timeoff

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// TimeOffRepository is the time-off repository interface.
type TimeOffRepository interface {
	Create(ctx context.Context, req *domain.TimeOffRequest) (*domain.TimeOffRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeOffRequest, error)
	SetStatus(ctx context.Context, id int64, status domain.TimeOffStatus) error
}

// IdentityServiceClient is the identity service client interface.
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
