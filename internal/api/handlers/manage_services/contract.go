package manage_services

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog/models"
)

// CatalogService is the catalog administration interface.
type CatalogService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	SetServiceActive(ctx context.Context, userID, serviceID int64, active bool) error
	SetPrice(ctx context.Context, req *models.SetPriceRequest) error
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
