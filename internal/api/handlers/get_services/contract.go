package get_services

import (
	"context"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog/models"
)

// CatalogService is the catalog read interface.
type CatalogService interface {
	ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error)
	GetService(ctx context.Context, id int64) (*models.ServiceResponse, error)
	GetPrice(ctx context.Context, serviceID int64, size string) (*models.PriceResponse, error)
	GetPrices(ctx context.Context, serviceID int64) (*models.PriceListResponse, error)
}

// Logger is the logging interface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
