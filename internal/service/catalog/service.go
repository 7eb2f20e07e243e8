package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog/models"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/types"
)

// Service manages the grooming catalog: services, their allowed start
// times and the size-based price matrix. Catalog mutations are a manager
// concern; reads are open to everyone.
type Service struct {
	catalogRepo    CatalogRepository
	identityClient IdentityServiceClient
	logger         Logger
}

// NewService creates the catalog service.
func NewService(
	catalogRepo CatalogRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:    catalogRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// ListServices returns the catalog. Non-managers only see active services.
func (s *Service) ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: activeOnly=%v", activeOnly)

	services, err := s.catalogRepo.ListServices(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetService fetches one service with its allowed start times.
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: fetching service id=%d", id)

	service, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// CreateService adds a new service to the catalog.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: user=%d, name=%q", req.UserID, req.Name)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := validateServiceDefinition(req.Name, req.DurationMinutes, req.AllowedStartTimes); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	service := &domain.Service{
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		AllowedStartTimes: req.AllowedStartTimes,
		IsActive:          true,
	}

	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateService) {
			s.logger.Warn("CreateService: name %q already exists", req.Name)
			return nil, ErrDuplicateService
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService rewrites a service definition.
func (s *Service) UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: user=%d, service=%d", req.UserID, req.ServiceID)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := validateServiceDefinition(req.Name, req.DurationMinutes, req.AllowedStartTimes); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	service := &domain.Service{
		ID:                req.ServiceID,
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		AllowedStartTimes: req.AllowedStartTimes,
		IsActive:          req.IsActive,
	}

	if err := s.catalogRepo.UpdateService(ctx, service); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		if errors.Is(err, catalogRepo.ErrDuplicateService) {
			s.logger.Warn("UpdateService: name %q already exists", req.Name)
			return nil, ErrDuplicateService
		}
		s.logger.Error("UpdateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%d updated", req.ServiceID)
	return s.GetService(ctx, req.ServiceID)
}

// SetServiceActive toggles service visibility. Deactivating never touches
// existing appointments.
func (s *Service) SetServiceActive(ctx context.Context, userID, serviceID int64, active bool) error {
	s.logger.Info("SetServiceActive: user=%d, service=%d, active=%v", userID, serviceID, active)

	if err := s.checkManagerAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.catalogRepo.SetServiceActive(ctx, serviceID, active); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("SetServiceActive: service id=%d not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("SetServiceActive: repository error: %v", err)
		return fmt.Errorf("%w: SetServiceActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SetPrice writes one cell of the price matrix.
func (s *Service) SetPrice(ctx context.Context, req *models.SetPriceRequest) error {
	s.logger.Info("SetPrice: user=%d, service=%d, size=%s, price=%.2f",
		req.UserID, req.ServiceID, req.Size, req.Price)

	if err := s.checkManagerAccess(ctx, req.UserID); err != nil {
		return err
	}

	size, ok := domain.ParsePetSize(req.Size)
	if !ok {
		s.logger.Warn("SetPrice: invalid size %q", req.Size)
		return fmt.Errorf("%w: invalid pet size", ErrInvalidInput)
	}
	if req.Price <= 0 || req.Price > domain.MaxServicePrice {
		s.logger.Warn("SetPrice: price %.2f out of range", req.Price)
		return fmt.Errorf("%w: price out of range", ErrInvalidInput)
	}

	// Prices only attach to existing services
	if _, err := s.catalogRepo.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("SetPrice: service id=%d not found", req.ServiceID)
			return ErrServiceNotFound
		}
		s.logger.Error("SetPrice: repository error: %v", err)
		return fmt.Errorf("%w: SetPrice - repository error: %v", ErrInternal, err)
	}

	price := &domain.ServicePrice{
		ServiceID: req.ServiceID,
		Size:      size,
		Price:     req.Price,
	}
	if err := s.catalogRepo.UpsertPrice(ctx, price); err != nil {
		s.logger.Error("SetPrice: repository error: %v", err)
		return fmt.Errorf("%w: SetPrice - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetPrice: service=%d size=%s priced at %.2f", req.ServiceID, size, req.Price)
	return nil
}

// GetPrice resolves the price of one (service, size) pair. There is no
// fallback between sizes; an unconfigured cell is a not-found.
func (s *Service) GetPrice(ctx context.Context, serviceID int64, sizeName string) (*models.PriceResponse, error) {
	s.logger.Info("GetPrice: service=%d, size=%s", serviceID, sizeName)

	size, ok := domain.ParsePetSize(sizeName)
	if !ok {
		s.logger.Warn("GetPrice: invalid size %q", sizeName)
		return nil, fmt.Errorf("%w: invalid pet size", ErrInvalidInput)
	}

	price, err := s.catalogRepo.GetPrice(ctx, serviceID, size)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPriceNotFound) {
			s.logger.Warn("GetPrice: no price for service=%d size=%s", serviceID, size)
			return nil, ErrPriceNotFound
		}
		s.logger.Error("GetPrice: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPrice - repository error: %v", ErrInternal, err)
	}

	return &models.PriceResponse{
		ServiceID: price.ServiceID,
		Size:      string(price.Size),
		Price:     price.Price,
	}, nil
}

// GetPrices returns the price matrix of a service.
func (s *Service) GetPrices(ctx context.Context, serviceID int64) (*models.PriceListResponse, error) {
	s.logger.Info("GetPrices: fetching prices for service=%d", serviceID)

	if _, err := s.catalogRepo.GetServiceByID(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetPrices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPrices - repository error: %v", ErrInternal, err)
	}

	prices, err := s.catalogRepo.ListPrices(ctx, serviceID)
	if err != nil {
		s.logger.Error("GetPrices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPrices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPrices(prices), nil
}

// checkManagerAccess verifies the actor holds the manager role.
func (s *Service) checkManagerAccess(ctx context.Context, userID int64) error {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("checkManagerAccess: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: identity error: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) {
		s.logger.Warn("checkManagerAccess: user id=%d is not a manager", userID)
		return ErrAccessDenied
	}
	return nil
}

// validateServiceDefinition checks the name, duration bounds, and that at
// least one allowed start time parses as HH:MM.
func validateServiceDefinition(name string, durationMinutes int, allowedStartTimes string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	valid := 0
	for _, part := range strings.Split(allowedStartTimes, ",") {
		if _, err := types.NewTimeStringFromString(strings.TrimSpace(part)); err == nil {
			valid++
		}
	}
	if valid == 0 {
		return fmt.Errorf("%w: at least one valid HH:MM start time is required", ErrInvalidInput)
	}

	return nil
}
