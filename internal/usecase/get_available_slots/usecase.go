package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	catalogRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/catalog"
)

// maxRangeDays caps a range lookup to one booking horizon.
const maxRangeDays = domain.MaxAdvanceBookingDays

// UseCase computes which allowed start times of a service can still be
// booked. Availability is derived on every call from the calendar ledger,
// approved time off and the employee roster; nothing is cached.
type UseCase struct {
	catalogRepo    CatalogRepository
	calendarRepo   CalendarRepository
	timeOffRepo    TimeOffRepository
	identityClient IdentityServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(
	catalogRepo CatalogRepository,
	calendarRepo CalendarRepository,
	timeOffRepo TimeOffRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:    catalogRepo,
		calendarRepo:   calendarRepo,
		timeOffRepo:    timeOffRepo,
		identityClient: identityClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute returns the slot availability of a service on a single date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if req.ServiceID <= 0 {
		return nil, ErrInvalidServiceID
	}
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Load the service
	service, err := uc.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 4. Load employees
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}

	// 5. Load day state and compute
	day, err := uc.buildDay(ctx, service, req.Date, now, employeeIDList(employees))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, %d slots computed",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(day.Slots))

	return day, nil
}

// ExecuteRange returns slot availability for each date in [from, to].
func (uc *UseCase) ExecuteRange(ctx context.Context, req *RangeRequest) (*RangeResponse, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, range=%s..%s",
		req.ServiceID, req.FromDate.Format(domain.DateFormat), req.ToDate.Format(domain.DateFormat))

	// 1. Validate input
	if req.ServiceID <= 0 {
		return nil, ErrInvalidServiceID
	}
	if req.FromDate.IsZero() || req.ToDate.IsZero() {
		return nil, ErrInvalidDate
	}
	if req.ToDate.Before(req.FromDate) {
		return nil, ErrInvalidDateRange
	}
	if req.ToDate.Sub(req.FromDate) > maxRangeDays*24*time.Hour {
		return nil, ErrInvalidDateRange
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Load the service once for the whole range
	service, err := uc.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 4. Load employees once
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	employeeIDs := employeeIDList(employees)

	// 5. Walk the dates
	resp := &RangeResponse{ServiceID: req.ServiceID}
	for d := req.FromDate; !d.After(req.ToDate); d = d.AddDate(0, 0, 1) {
		day, err := uc.buildDay(ctx, service, d, now, employeeIDs)
		if err != nil {
			return nil, err
		}
		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}

// getActiveService loads a service and hides inactive ones from clients.
func (uc *UseCase) getActiveService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	service, err := uc.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", serviceID)
		return nil, ErrServiceNotFound
	}
	return service, nil
}

// buildDay loads the calendar and time-off state for one date and computes
// the slot list.
func (uc *UseCase) buildDay(ctx context.Context, service *domain.Service, date, now time.Time, employeeIDs []int64) (*Response, error) {
	dayStart, dayEnd := domain.DayBounds(date)

	entries, err := uc.calendarRepo.ListBetween(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list calendar entries: %v", err)
		return nil, fmt.Errorf("%w: failed to list calendar entries: %v", ErrInternal, err)
	}

	timeOff, err := uc.timeOffRepo.ListApprovedOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list time off: %v", err)
		return nil, fmt.Errorf("%w: failed to list time off: %v", ErrInternal, err)
	}

	return &Response{
		ServiceID: service.ID,
		Date:      date,
		Slots:     buildDaySlots(service, date, now, employeeIDs, entries, timeOff),
	}, nil
}
