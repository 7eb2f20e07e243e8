package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

// Service is the appointment read side: single lookups, client history,
// the manager's pending queue and the committed schedule. All mutations go
// through the use cases.
type Service struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	identityClient  IdentityServiceClient
	logger          Logger
}

// NewService creates the appointments read service.
func NewService(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		identityClient:  identityClient,
		logger:          logger,
	}
}

// GetByID fetches one appointment. Clients only see their own; managers
// see everything.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != userID {
		isManager, err := s.userIsManager(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isManager {
			s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetOverlapping returns the approved, employee-assigned appointments whose
// windows intersect the given appointment's window, excluding the
// appointment itself. Same visibility rules as GetByID.
func (s *Service) GetOverlapping(ctx context.Context, id int64, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetOverlapping: fetching overlaps for appointment id=%d, user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetOverlapping: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetOverlapping: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetOverlapping - repository error: %v", ErrInternal, err)
	}

	if appointment.ClientID != userID {
		isManager, err := s.userIsManager(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isManager {
			s.logger.Warn("GetOverlapping: access denied for user=%d to appointment id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	// Widen the query window backwards so long-running appointments that
	// started before this one are still candidates.
	window := appointment.Window()
	margin := time.Duration(domain.MaxServiceDurationMinutes) * time.Minute
	candidates, err := s.appointmentRepo.ListApprovedAssignedBetween(ctx, window.Start.Add(-margin), window.End)
	if err != nil {
		s.logger.Error("GetOverlapping: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetOverlapping - repository error: %v", ErrInternal, err)
	}

	overlapping := make([]*domain.Appointment, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == appointment.ID {
			continue
		}
		if c.Window().Overlaps(window) {
			overlapping = append(overlapping, c)
		}
	}

	s.logger.Info("GetOverlapping: %d appointments overlap appointment id=%d", len(overlapping), id)
	return models.FromDomainAppointmentList(overlapping), nil
}

// GetClientAppointments fetches a client's history, optionally filtered by
// status.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, status=%v", req.ClientID, req.Status)

	var status *domain.AppointmentStatus
	if req.Status != nil {
		parsed, ok := domain.ParseAppointmentStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	appointments, err := s.appointmentRepo.ListByClient(ctx, req.ClientID, status)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%d", len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetPendingAppointments returns the manager approval queue, ordered by
// start time. Computed fresh on every call.
func (s *Service) GetPendingAppointments(ctx context.Context, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetPendingAppointments: fetching pending queue for user=%d", userID)

	isManager, err := s.userIsManager(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		s.logger.Warn("GetPendingAppointments: access denied for user=%d", userID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("GetPendingAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPendingAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPendingAppointments: %d appointments pending", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetSchedule returns the committed calendar over a window. Managers and
// employees use this to see who is booked when.
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for user=%d, from=%s, to=%s",
		req.UserID, req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))

	if req.ToDate.Before(req.FromDate) {
		return nil, fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	}

	user, err := s.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("GetSchedule: user id=%d not found", req.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("GetSchedule: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetSchedule - identity error: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) && !user.HasRole(identityClient.RoleEmployee) {
		s.logger.Warn("GetSchedule: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	entries, err := s.calendarRepo.ListBetween(ctx, req.FromDate, req.ToDate)
	if err != nil {
		s.logger.Error("GetSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: %d entries in window", len(entries))
	return models.FromDomainCalendarEntries(entries), nil
}

// userIsManager resolves the actor's role.
func (s *Service) userIsManager(ctx context.Context, userID int64) (bool, error) {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			return false, nil
		}
		s.logger.Error("userIsManager: failed to get user id=%d: %v", userID, err)
		return false, fmt.Errorf("%w: identity error: %v", ErrInternal, err)
	}
	return user.HasRole(identityClient.RoleManager), nil
}
