package catalog

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// CatalogRepository is the service catalog repository interface.
type CatalogRepository interface {
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	UpdateService(ctx context.Context, s *domain.Service) error
	SetServiceActive(ctx context.Context, id int64, active bool) error
	UpsertPrice(ctx context.Context, p *domain.ServicePrice) error
	GetPrice(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServicePrice, error)
	ListPrices(ctx context.Context, serviceID int64) ([]*domain.ServicePrice, error)
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
