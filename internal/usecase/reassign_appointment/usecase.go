package reassign_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

// UseCase moves an approved appointment to another employee. The calendar
// ledger holds one entry per appointment, so the upsert replaces the old
// employee's commitment and the new one appears in the same transaction;
// no intermediate state is visible to availability checks.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	timeOffRepo     TimeOffRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

// NewUseCase creates the reassignment use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	calendarRepo CalendarRepository,
	timeOffRepo TimeOffRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendarRepo:    calendarRepo,
		timeOffRepo:     timeOffRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute reassigns an approved appointment to a new employee.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReassignAppointment: appointment=%d, manager=%d, employee=%d",
		req.AppointmentID, req.ManagerID, req.NewEmployeeID)

	// 1. Validate input
	if req.AppointmentID <= 0 {
		return nil, ErrInvalidAppointmentID
	}
	if req.NewEmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}

	// 2. Only managers reassign
	user, err := uc.identityClient.GetUser(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("ReassignAppointment: user id=%d not found", req.ManagerID)
			return nil, ErrPermissionDenied
		}
		uc.logger.Error("ReassignAppointment: failed to get user id=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) {
		uc.logger.Warn("ReassignAppointment: user id=%d is not a manager", req.ManagerID)
		return nil, ErrPermissionDenied
	}

	// 3. The new employee must be on the roster
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("ReassignAppointment: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	onRoster := false
	for _, e := range employees {
		if e.ID == req.NewEmployeeID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		uc.logger.Warn("ReassignAppointment: employee id=%d not on roster", req.NewEmployeeID)
		return nil, ErrEmployeeNotFound
	}

	var (
		result    *domain.Appointment
		unchanged bool
	)

	// 4. Swap employee and replace the calendar entry in one transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load the appointment
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ReassignAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ReassignAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if appointment.Status != domain.StatusApproved {
			uc.logger.Warn("ReassignAppointment: appointment id=%d is %s, not approved",
				req.AppointmentID, appointment.Status)
			return ErrNotApproved
		}
		// Reassigning to the current employee is a no-op success: the
		// ledger entry already holds the commitment.
		if appointment.EmployeeID != nil && *appointment.EmployeeID == req.NewEmployeeID {
			uc.logger.Info("ReassignAppointment: appointment id=%d already with employee id=%d, nothing to do",
				req.AppointmentID, req.NewEmployeeID)
			result = appointment
			unchanged = true
			return nil
		}

		// 4.2. The new employee must be free; the appointment's own entry is
		// excluded so the check does not trip on the commitment being moved
		window := appointment.Window()
		entries, err := uc.calendarRepo.ListBetween(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("ReassignAppointment: failed to list calendar entries: %v", err)
			return fmt.Errorf("%w: failed to list calendar entries: %v", ErrInternal, err)
		}
		timeOff, err := uc.timeOffRepo.ListApprovedOverlapping(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("ReassignAppointment: failed to list time off: %v", err)
			return fmt.Errorf("%w: failed to list time off: %v", ErrInternal, err)
		}
		if !domain.EmployeeIsFree(req.NewEmployeeID, window, entries, timeOff, ptr.Ptr(appointment.ID)) {
			uc.logger.Warn("ReassignAppointment: employee id=%d busy during appointment id=%d",
				req.NewEmployeeID, req.AppointmentID)
			return ErrEmployeeBusy
		}

		// 4.3. Guarded employee swap on the approved appointment
		if err := uc.appointmentRepo.UpdateEmployee(txCtx, req.AppointmentID, req.NewEmployeeID); err != nil {
			if errors.Is(err, apptRepo.ErrNotApproved) {
				uc.logger.Warn("ReassignAppointment: appointment id=%d lost reassignment race", req.AppointmentID)
				return ErrNotApproved
			}
			uc.logger.Error("ReassignAppointment: failed to update employee: %v", err)
			return fmt.Errorf("%w: failed to update employee: %v", ErrInternal, err)
		}

		// 4.4. Replace the calendar commitment
		entry := &domain.CalendarEntry{
			EmployeeID:      req.NewEmployeeID,
			AppointmentID:   appointment.ID,
			ScheduledTime:   appointment.StartTime,
			DurationMinutes: appointment.DurationMinutes,
			Available:       false,
		}
		if err := uc.calendarRepo.Upsert(txCtx, entry); err != nil {
			uc.logger.Error("ReassignAppointment: failed to write calendar entry: %v", err)
			return fmt.Errorf("%w: failed to write calendar entry: %v", ErrInternal, err)
		}

		appointment.EmployeeID = ptr.Ptr(req.NewEmployeeID)
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !unchanged {
		uc.logger.Info("ReassignAppointment: appointment id=%d moved to employee id=%d",
			result.ID, req.NewEmployeeID)
		uc.events.AppointmentReassigned(ctx, result.ID, req.ManagerID)
	}

	return &Response{
		ID:              result.ID,
		EmployeeID:      req.NewEmployeeID,
		Status:          string(result.Status),
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
	}, nil
}
