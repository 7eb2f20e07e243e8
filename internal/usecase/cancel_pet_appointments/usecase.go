package cancel_pet_appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
)

// UseCase cancels every future pending/approved appointment of a pet. The
// pet-profile service calls this when a pet is deleted. The whole cascade
// runs in one transaction: either every future appointment is cancelled
// and its calendar slot freed, or none are.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the cascade-cancellation use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute cancels all future active appointments of a pet.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelPetAppointments: pet=%d, actor=%d", req.PetID, req.ActorID)

	// 1. Validate input
	if req.PetID <= 0 {
		return nil, ErrInvalidPetID
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	var cancelledIDs []int64

	// 3. Cascade in one transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cancelledIDs = cancelledIDs[:0]

		appointments, err := uc.appointmentRepo.ListActiveFutureByPet(txCtx, req.PetID, now)
		if err != nil {
			uc.logger.Error("CancelPetAppointments: failed to list appointments for pet id=%d: %v", req.PetID, err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		for _, a := range appointments {
			if err := uc.appointmentRepo.Cancel(txCtx, a.ID); err != nil {
				// Already terminal: skip, the listing raced another writer
				if errors.Is(err, apptRepo.ErrCannotCancel) {
					uc.logger.Warn("CancelPetAppointments: appointment id=%d no longer active", a.ID)
					continue
				}
				uc.logger.Error("CancelPetAppointments: failed to cancel appointment id=%d: %v", a.ID, err)
				return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
			}
			if err := uc.calendarRepo.DeleteByAppointment(txCtx, a.ID); err != nil {
				uc.logger.Error("CancelPetAppointments: failed to delete calendar entry for appointment id=%d: %v", a.ID, err)
				return fmt.Errorf("%w: failed to delete calendar entry: %v", ErrInternal, err)
			}
			cancelledIDs = append(cancelledIDs, a.ID)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelPetAppointments: pet id=%d, %d appointments cancelled", req.PetID, len(cancelledIDs))
	for _, id := range cancelledIDs {
		uc.events.AppointmentCancelled(ctx, id, req.ActorID)
	}

	return &Response{
		PetID:          req.PetID,
		CancelledCount: len(cancelledIDs),
		CancelledIDs:   cancelledIDs,
	}, nil
}
