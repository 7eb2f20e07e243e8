package reject_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
)

// UseCase moves a pending appointment to rejected. No calendar entry ever
// existed for a pending appointment, so there is nothing to clean up.
type UseCase struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

// NewUseCase creates the rejection use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute rejects a pending appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectAppointment: appointment=%d, manager=%d", req.AppointmentID, req.ManagerID)

	// 1. Validate input
	if req.AppointmentID <= 0 {
		return nil, ErrInvalidAppointmentID
	}

	// 2. Only managers reject
	user, err := uc.identityClient.GetUser(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("RejectAppointment: user id=%d not found", req.ManagerID)
			return nil, ErrPermissionDenied
		}
		uc.logger.Error("RejectAppointment: failed to get user id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) {
		uc.logger.Warn("RejectAppointment: user id=%d is not a manager", req.ManagerID)
		return nil, ErrPermissionDenied
	}

	var result *domain.Appointment

	// 3. Guarded pending -> rejected transition
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RejectAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RejectAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.Reject(txCtx, req.AppointmentID); err != nil {
			if errors.Is(err, apptRepo.ErrNotPending) {
				uc.logger.Warn("RejectAppointment: appointment id=%d is %s, not pending",
					req.AppointmentID, appointment.Status)
				return ErrNotPending
			}
			uc.logger.Error("RejectAppointment: failed to reject appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to reject appointment: %v", ErrInternal, err)
		}

		appointment.Status = domain.StatusRejected
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RejectAppointment: appointment id=%d rejected", result.ID)
	uc.events.AppointmentRejected(ctx, result.ID, req.ManagerID)

	return &Response{
		ID:             result.ID,
		Status:         string(result.Status),
		EditsRemaining: result.EditsRemaining(),
	}, nil
}
