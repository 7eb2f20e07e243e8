package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// UseCase cancels an active appointment. The calendar commitment (if the
// appointment was approved) is removed in the same transaction, so the
// freed slot shows up in availability immediately.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the cancellation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute cancels an appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: appointment=%d, actor=%d", req.AppointmentID, req.ActorID)

	// 1. Validate input
	if req.AppointmentID <= 0 {
		return nil, ErrInvalidAppointmentID
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Resolve the actor's role; managers bypass the notice window
	isManager, err := uc.actorIsManager(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 4. Cancel and free the slot in one transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load and authorize
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if !isManager && appointment.ClientID != req.ActorID {
			uc.logger.Warn("CancelAppointment: appointment id=%d not owned by actor id=%d",
				req.AppointmentID, req.ActorID)
			return ErrPermissionDenied
		}

		// 4.2. Clients respect the strict 24-hour notice
		if !appointment.IsActive() {
			uc.logger.Warn("CancelAppointment: appointment id=%d is %s", req.AppointmentID, appointment.Status)
			return ErrNotActive
		}
		if !isManager && !appointment.MoreThanNoticeAway(now) {
			uc.logger.Warn("CancelAppointment: appointment id=%d starts within notice window", req.AppointmentID)
			return ErrTooLate
		}

		// 4.3. Guarded active -> cancelled transition
		if err := uc.appointmentRepo.Cancel(txCtx, req.AppointmentID); err != nil {
			if errors.Is(err, apptRepo.ErrCannotCancel) {
				uc.logger.Warn("CancelAppointment: appointment id=%d lost cancellation race", req.AppointmentID)
				return ErrNotActive
			}
			uc.logger.Error("CancelAppointment: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// 4.4. Free the calendar slot; a no-op for pending appointments
		if err := uc.calendarRepo.DeleteByAppointment(txCtx, req.AppointmentID); err != nil {
			uc.logger.Error("CancelAppointment: failed to delete calendar entry: %v", err)
			return fmt.Errorf("%w: failed to delete calendar entry: %v", ErrInternal, err)
		}

		appointment.Status = domain.StatusCancelled
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelAppointment: appointment id=%d cancelled", result.ID)
	uc.events.AppointmentCancelled(ctx, result.ID, req.ActorID)

	return &Response{
		ID:     result.ID,
		Status: string(result.Status),
	}, nil
}

// actorIsManager resolves the actor's role. A missing identity profile is
// not fatal: the ownership check still applies.
func (uc *UseCase) actorIsManager(ctx context.Context, actorID int64) (bool, error) {
	user, err := uc.identityClient.GetUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			return false, nil
		}
		uc.logger.Error("CancelAppointment: failed to get user id=%d: %v", actorID, err)
		return false, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user.HasRole(identityClient.RoleManager), nil
}
