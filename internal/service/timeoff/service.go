package timeoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	timeoffRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/timeoff"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/timeoff/models"
)

// Service manages employee time-off requests. Employees file requests for
// themselves; managers decide them. Only approved requests block
// availability.
type Service struct {
	timeOffRepo    TimeOffRepository
	identityClient IdentityServiceClient
	logger         Logger
}

// NewService creates the time-off service.
func NewService(
	timeOffRepo TimeOffRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		timeOffRepo:    timeOffRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Create files a pending time-off request.
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("CreateTimeOff: employee=%d, from=%s, to=%s",
		req.EmployeeID, req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	if req.StartTime.IsZero() || req.EndTime.IsZero() || !req.EndTime.After(req.StartTime) {
		s.logger.Warn("CreateTimeOff: invalid interval for employee=%d", req.EmployeeID)
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	user, err := s.identityClient.GetUser(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("CreateTimeOff: user id=%d not found", req.EmployeeID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("CreateTimeOff: failed to get user id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: identity error: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleEmployee) {
		s.logger.Warn("CreateTimeOff: user id=%d is not an employee", req.EmployeeID)
		return nil, ErrAccessDenied
	}

	request := &domain.TimeOffRequest{
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.TimeOffPending,
	}

	created, err := s.timeOffRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("CreateTimeOff: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeOff: created request id=%d", created.ID)
	return models.FromDomainTimeOff(created), nil
}

// Decide approves or rejects a pending request.
func (s *Service) Decide(ctx context.Context, req *models.DecideRequest) (*models.TimeOffResponse, error) {
	s.logger.Info("DecideTimeOff: manager=%d, request=%d, approve=%v", req.ManagerID, req.RequestID, req.Approve)

	user, err := s.identityClient.GetUser(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("DecideTimeOff: user id=%d not found", req.ManagerID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("DecideTimeOff: failed to get user id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: identity error: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) {
		s.logger.Warn("DecideTimeOff: user id=%d is not a manager", req.ManagerID)
		return nil, ErrAccessDenied
	}

	request, err := s.timeOffRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, timeoffRepo.ErrRequestNotFound) {
			s.logger.Warn("DecideTimeOff: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("DecideTimeOff: repository error: %v", err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}
	if request.Status != domain.TimeOffPending {
		s.logger.Warn("DecideTimeOff: request id=%d already %s", req.RequestID, request.Status)
		return nil, ErrAlreadyDecided
	}

	status := domain.TimeOffRejected
	if req.Approve {
		status = domain.TimeOffApproved
	}
	if err := s.timeOffRepo.SetStatus(ctx, req.RequestID, status); err != nil {
		s.logger.Error("DecideTimeOff: repository error: %v", err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	request.Status = status
	s.logger.Info("DecideTimeOff: request id=%d now %s", req.RequestID, status)
	return models.FromDomainTimeOff(request), nil
}
