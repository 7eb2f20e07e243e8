package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
	voucherRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/voucher"
	petClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/petservice"
)

// UseCase creates a pending appointment for a client. All rules that read
// shared state (daily cap, employee availability, voucher redemption, the
// pet/time uniqueness) run inside one serializable transaction so two
// concurrent bookings cannot both pass.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	calendarRepo    CalendarRepository
	timeOffRepo     TimeOffRepository
	voucherRepo     VoucherRepository
	petClient       PetServiceClient
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	calendarRepo CalendarRepository,
	timeOffRepo TimeOffRepository,
	voucherRepo VoucherRepository,
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
		voucherRepo:     voucherRepo,
		petClient:       petClient,
		identityClient:  identityClient,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books an appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%d, pet=%d, service=%d, start=%s",
		req.ClientID, req.PetID, req.ServiceID, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Load and check the pet
	pet, err := uc.petClient.GetPet(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, petClient.ErrPetNotFound) {
			uc.logger.Warn("BookAppointment: pet id=%d not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("BookAppointment: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}
	if pet.OwnerID != req.ClientID {
		uc.logger.Warn("BookAppointment: pet id=%d does not belong to client id=%d", req.PetID, req.ClientID)
		return nil, ErrPetNotOwned
	}
	if !pet.IsVerified() {
		uc.logger.Warn("BookAppointment: pet id=%d is not verified", req.PetID)
		return nil, ErrPetNotVerified
	}

	// 4. Load the service and validate the schedule
	service, err := uc.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := validateSchedule(service, req.StartTime, now); err != nil {
		uc.logger.Warn("BookAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 5. Resolve the price for the pet's size; a missing price is a hard
	// error, never a default
	price, err := uc.catalogRepo.GetPrice(ctx, service.ID, pet.Size)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPriceNotFound) {
			uc.logger.Warn("BookAppointment: no price for service=%d size=%s", service.ID, pet.Size)
			return nil, ErrPriceNotConfigured
		}
		uc.logger.Error("BookAppointment: failed to get price: %v", err)
		return nil, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	// 6. Load the employee roster
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	employeeIDs := make([]int64, 0, len(employees))
	for _, e := range employees {
		employeeIDs = append(employeeIDs, e.ID)
	}

	var result *domain.Appointment

	// 7. Write path in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Same-day cap on active appointments
		dayStart, dayEnd := domain.DayBounds(req.StartTime)
		count, err := uc.appointmentRepo.CountActiveSameDay(txCtx, req.ClientID, dayStart, dayEnd, nil)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to count same-day appointments: %v", err)
			return fmt.Errorf("%w: failed to count same-day appointments: %v", ErrInternal, err)
		}
		if count >= domain.MaxSameDayAppointments {
			uc.logger.Warn("BookAppointment: client id=%d already has %d appointments on %s",
				req.ClientID, count, req.StartTime.Format(domain.DateFormat))
			return ErrDailyLimitReached
		}

		// 7.2. At least one groomer must be free for the window
		window := domain.Interval{Start: req.StartTime, End: req.StartTime.Add(service.Duration())}
		free, err := uc.anyEmployeeFree(txCtx, window, employeeIDs)
		if err != nil {
			return err
		}
		if !free {
			uc.logger.Warn("BookAppointment: no employee free at %s", req.StartTime.Format("2006-01-02 15:04"))
			return ErrNoEmployeeAvailable
		}

		// 7.3. Price, with voucher applied and redeemed atomically
		finalPrice := price.Price
		if req.VoucherCode != nil {
			discounted, err := uc.redeemVoucher(txCtx, *req.VoucherCode, req.ClientID, finalPrice, now)
			if err != nil {
				return err
			}
			finalPrice = discounted
		}

		// 7.4. Create the appointment with denormalized history fields
		appointment := &domain.Appointment{
			PetID:           req.PetID,
			ClientID:        req.ClientID,
			ServiceID:       service.ID,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			FinalPrice:      finalPrice,
			VoucherCode:     req.VoucherCode,
			PetName:         pet.Name,
			ServiceName:     service.Name,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, apptRepo.ErrDuplicateAppointment) {
				uc.logger.Warn("BookAppointment: pet id=%d already booked at %s",
					req.PetID, req.StartTime.Format("2006-01-02 15:04"))
				return ErrTimeSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%d, price=%.2f", result.ID, result.FinalPrice)
	uc.events.AppointmentBooked(ctx, result.ID, req.ClientID)

	return toResponse(result), nil
}

// getActiveService loads a service and hides inactive ones from clients.
func (uc *UseCase) getActiveService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	service, err := uc.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointment: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("BookAppointment: service id=%d is inactive", serviceID)
		return nil, ErrServiceNotFound
	}
	return service, nil
}

// anyEmployeeFree checks the calendar ledger and approved time off for the
// candidate window.
func (uc *UseCase) anyEmployeeFree(ctx context.Context, window domain.Interval, employeeIDs []int64) (bool, error) {
	entries, err := uc.calendarRepo.ListBetween(ctx, window.Start, window.End)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to list calendar entries: %v", err)
		return false, fmt.Errorf("%w: failed to list calendar entries: %v", ErrInternal, err)
	}

	timeOff, err := uc.timeOffRepo.ListApprovedOverlapping(ctx, window.Start, window.End)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to list time off: %v", err)
		return false, fmt.Errorf("%w: failed to list time off: %v", ErrInternal, err)
	}

	_, found := domain.FirstFreeEmployee(employeeIDs, window, entries, timeOff)
	return found, nil
}

// redeemVoucher validates, applies and spends the voucher. Redemption is a
// guarded update, so the voucher is spent exactly once even under
// concurrent bookings; a rolled-back transaction releases it again.
func (uc *UseCase) redeemVoucher(ctx context.Context, code string, clientID int64, price float64, now time.Time) (float64, error) {
	voucher, err := uc.voucherRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrVoucherNotFound) {
			uc.logger.Warn("BookAppointment: voucher %q not found", code)
			return 0, ErrVoucherInvalid
		}
		uc.logger.Error("BookAppointment: failed to get voucher: %v", err)
		return 0, fmt.Errorf("%w: failed to get voucher: %v", ErrInternal, err)
	}

	if !voucher.IsValid(now) {
		uc.logger.Warn("BookAppointment: voucher %q expired or already redeemed", code)
		return 0, ErrVoucherInvalid
	}

	if err := uc.voucherRepo.Redeem(ctx, code, clientID); err != nil {
		if errors.Is(err, voucherRepo.ErrAlreadyRedeemed) {
			uc.logger.Warn("BookAppointment: voucher %q lost redemption race", code)
			return 0, ErrVoucherInvalid
		}
		uc.logger.Error("BookAppointment: failed to redeem voucher: %v", err)
		return 0, fmt.Errorf("%w: failed to redeem voucher: %v", ErrInternal, err)
	}

	return voucher.Apply(price), nil
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:              a.ID,
		PetID:           a.PetID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		EditCount:       a.EditCount,
		FinalPrice:      a.FinalPrice,
		VoucherCode:     a.VoucherCode,
		PetName:         a.PetName,
		ServiceName:     a.ServiceName,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
