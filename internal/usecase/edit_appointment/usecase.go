package edit_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	petClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/petservice"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

// UseCase applies a client edit to an appointment. An edit always resets
// the status to pending and burns one unit of the edit budget; the price
// is recomputed from the new service and the pet's size. Any voucher
// discount from the original booking is not carried over.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	calendarRepo    CalendarRepository
	timeOffRepo     TimeOffRepository
	petClient       PetServiceClient
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the edit use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	calendarRepo CalendarRepository,
	timeOffRepo TimeOffRepository,
	petClient PetServiceClient,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		calendarRepo:    calendarRepo,
		timeOffRepo:     timeOffRepo,
		petClient:       petClient,
		identityClient:  identityClient,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute edits an appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditAppointment: appointment=%d, client=%d, service=%d, start=%s",
		req.AppointmentID, req.ClientID, req.ServiceID, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Validate input
	if req.AppointmentID <= 0 {
		return nil, ErrInvalidAppointmentID
	}
	if req.ServiceID <= 0 {
		return nil, ErrInvalidServiceID
	}
	if req.StartTime.IsZero() {
		return nil, ErrInvalidStartTime
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Load the new service and validate the schedule
	service, err := uc.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := uc.validateSchedule(service, req.StartTime, now); err != nil {
		uc.logger.Warn("EditAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 4. Load the employee roster
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("EditAppointment: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	employeeIDs := make([]int64, 0, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.ID)
	}

	var result *domain.Appointment

	// 5. Apply the edit in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Load and authorize
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("EditAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("EditAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if appointment.ClientID != req.ClientID {
			uc.logger.Warn("EditAppointment: appointment id=%d not owned by client id=%d",
				req.AppointmentID, req.ClientID)
			return ErrPermissionDenied
		}

		// 5.2. Edit rules: status, budget, and the strict 24-hour notice
		if appointment.Status == domain.StatusCancelled || appointment.Status == domain.StatusCompleted {
			uc.logger.Warn("EditAppointment: appointment id=%d is %s", req.AppointmentID, appointment.Status)
			return ErrNotEditable
		}
		if appointment.EditCount >= domain.MaxEditCount {
			uc.logger.Warn("EditAppointment: appointment id=%d edit limit reached (%d)",
				req.AppointmentID, appointment.EditCount)
			return ErrEditLimitReached
		}
		if !appointment.MoreThanNoticeAway(now) {
			uc.logger.Warn("EditAppointment: appointment id=%d starts within notice window", req.AppointmentID)
			return ErrTooLate
		}

		// 5.3. Price for the pet's size under the new service
		pet, err := uc.petClient.GetPet(txCtx, appointment.PetID)
		if err != nil {
			if errors.Is(err, petClient.ErrPetNotFound) {
				uc.logger.Warn("EditAppointment: pet id=%d not found", appointment.PetID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("EditAppointment: failed to get pet id=%d: %v", appointment.PetID, err)
			return fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
		}
		price, err := uc.catalogRepo.GetPrice(txCtx, service.ID, pet.Size)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrPriceNotFound) {
				uc.logger.Warn("EditAppointment: no price for service=%d size=%s", service.ID, pet.Size)
				return ErrPriceNotConfigured
			}
			uc.logger.Error("EditAppointment: failed to get price: %v", err)
			return fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
		}

		// 5.4. Same-day cap, excluding the appointment being moved
		dayStart, dayEnd := domain.DayBounds(req.StartTime)
		count, err := uc.appointmentRepo.CountActiveSameDay(txCtx, req.ClientID, dayStart, dayEnd, ptr.Ptr(appointment.ID))
		if err != nil {
			uc.logger.Error("EditAppointment: failed to count same-day appointments: %v", err)
			return fmt.Errorf("%w: failed to count same-day appointments: %v", ErrInternal, err)
		}
		if count >= domain.MaxSameDayAppointments {
			uc.logger.Warn("EditAppointment: client id=%d already has %d appointments on %s",
				req.ClientID, count, req.StartTime.Format(domain.DateFormat))
			return ErrDailyLimitReached
		}

		// 5.5. At least one groomer must be free for the new window
		window := domain.Interval{Start: req.StartTime, End: req.StartTime.Add(service.Duration())}
		entries, err := uc.calendarRepo.ListBetween(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("EditAppointment: failed to list calendar entries: %v", err)
			return fmt.Errorf("%w: failed to list calendar entries: %v", ErrInternal, err)
		}
		timeOff, err := uc.timeOffRepo.ListApprovedOverlapping(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("EditAppointment: failed to list time off: %v", err)
			return fmt.Errorf("%w: failed to list time off: %v", ErrInternal, err)
		}
		if _, found := domain.FirstFreeEmployee(employeeIDs, window, entries, timeOff); !found {
			uc.logger.Warn("EditAppointment: no employee free at %s", req.StartTime.Format("2006-01-02 15:04"))
			return ErrNoEmployeeAvailable
		}

		// 5.6. Guarded schedule update: resets to pending, burns one edit
		err = uc.appointmentRepo.UpdateSchedule(txCtx, appointment.ID, service.ID,
			req.StartTime, service.DurationMinutes, service.Name, price.Price)
		if err != nil {
			if errors.Is(err, apptRepo.ErrNotEditable) {
				uc.logger.Warn("EditAppointment: appointment id=%d lost edit race", req.AppointmentID)
				return ErrNotEditable
			}
			uc.logger.Error("EditAppointment: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		appointment.ServiceID = service.ID
		appointment.ServiceName = service.Name
		appointment.StartTime = req.StartTime
		appointment.DurationMinutes = service.DurationMinutes
		appointment.FinalPrice = price.Price
		appointment.Status = domain.StatusPending
		appointment.EditCount++
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EditAppointment: appointment id=%d edited, %d edits remaining",
		result.ID, result.EditsRemaining())
	uc.events.AppointmentEdited(ctx, result.ID, req.ClientID)

	return &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		EditCount:       result.EditCount,
		EditsRemaining:  result.EditsRemaining(),
		FinalPrice:      result.FinalPrice,
		ServiceName:     result.ServiceName,
	}, nil
}

// getActiveService loads a service and hides inactive ones from clients.
func (uc *UseCase) getActiveService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	service, err := uc.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("EditAppointment: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("EditAppointment: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("EditAppointment: service id=%d is inactive", serviceID)
		return nil, ErrServiceNotFound
	}
	return service, nil
}

// validateSchedule applies the shared scheduling rules to the new slot.
func (uc *UseCase) validateSchedule(service *domain.Service, start, now time.Time) error {
	if !start.After(now) {
		return ErrStartTimeInPast
	}
	if !domain.IsBusinessDay(start) || !domain.WithinBusinessHours(start) {
		return ErrOutsideBusinessHours
	}
	if !domain.WithinBookingHorizon(start, now) {
		return ErrBeyondBookingHorizon
	}
	if !service.AllowsStartTime(start) {
		return ErrStartTimeNotAllowed
	}
	return nil
}
