package approve_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	apptRepo "github.com/kerem-haeger/PetGroom-BookingService/internal/infra/storage/appointment"
	identityClient "github.com/kerem-haeger/PetGroom-BookingService/internal/integrations/identityservice"
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/ptr"
)

// UseCase moves a pending appointment to approved and commits the chosen
// employee in the calendar ledger. The status transition is a guarded
// update: with two managers approving concurrently, exactly one wins and
// the other gets ErrNotPending.
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendarRepo    CalendarRepository
	timeOffRepo     TimeOffRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the approval use case.
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
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute approves an appointment and assigns the employee.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveAppointment: appointment=%d, manager=%d, employee=%d",
		req.AppointmentID, req.ManagerID, req.EmployeeID)

	// 1. Validate input
	if req.AppointmentID <= 0 {
		return nil, ErrInvalidAppointmentID
	}
	if req.EmployeeID <= 0 {
		return nil, ErrInvalidEmployeeID
	}

	// 2. Only managers approve
	if err := uc.checkManager(ctx, req.ManagerID); err != nil {
		return nil, err
	}

	// 3. The employee must be on the roster
	if err := uc.checkEmployeeExists(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 4. Approve and commit the calendar entry in one transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load the appointment
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("ApproveAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("ApproveAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if appointment.Status != domain.StatusPending {
			uc.logger.Warn("ApproveAppointment: appointment id=%d is %s, not pending",
				req.AppointmentID, appointment.Status)
			return ErrNotPending
		}

		// 4.2. The slot must still lie in the future at approval time
		if !appointment.StartTime.After(uc.timeProvider.Now()) {
			uc.logger.Warn("ApproveAppointment: appointment id=%d starts in the past (%v)",
				req.AppointmentID, appointment.StartTime)
			return ErrStartTimeInPast
		}

		// 4.3. The employee must be free for the appointment window
		window := appointment.Window()
		busy, err := uc.employeeBusy(txCtx, req.EmployeeID, window, appointment.ID)
		if err != nil {
			return err
		}
		if busy {
			uc.logger.Warn("ApproveAppointment: employee id=%d busy during appointment id=%d",
				req.EmployeeID, req.AppointmentID)
			return ErrEmployeeBusy
		}

		// 4.4. Guarded pending -> approved transition
		if err := uc.appointmentRepo.Approve(txCtx, req.AppointmentID, req.EmployeeID); err != nil {
			if errors.Is(err, apptRepo.ErrNotPending) {
				uc.logger.Warn("ApproveAppointment: appointment id=%d lost approval race", req.AppointmentID)
				return ErrNotPending
			}
			uc.logger.Error("ApproveAppointment: failed to approve appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to approve appointment: %v", ErrInternal, err)
		}

		// 4.5. Commit the slot in the calendar ledger (idempotent per appointment)
		entry := &domain.CalendarEntry{
			EmployeeID:      req.EmployeeID,
			AppointmentID:   appointment.ID,
			ScheduledTime:   appointment.StartTime,
			DurationMinutes: appointment.DurationMinutes,
			Available:       false,
		}
		if err := uc.calendarRepo.Upsert(txCtx, entry); err != nil {
			uc.logger.Error("ApproveAppointment: failed to write calendar entry: %v", err)
			return fmt.Errorf("%w: failed to write calendar entry: %v", ErrInternal, err)
		}

		appointment.Status = domain.StatusApproved
		appointment.EmployeeID = ptr.Ptr(req.EmployeeID)
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveAppointment: appointment id=%d approved, employee id=%d",
		result.ID, req.EmployeeID)
	uc.events.AppointmentApproved(ctx, result.ID, req.ManagerID)

	return &Response{
		ID:              result.ID,
		PetID:           result.PetID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		EmployeeID:      req.EmployeeID,
		Status:          string(result.Status),
		FinalPrice:      result.FinalPrice,
		PetName:         result.PetName,
		ServiceName:     result.ServiceName,
	}, nil
}

// checkManager verifies the actor holds the manager role.
func (uc *UseCase) checkManager(ctx context.Context, managerID int64) error {
	user, err := uc.identityClient.GetUser(ctx, managerID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("ApproveAppointment: user id=%d not found", managerID)
			return ErrPermissionDenied
		}
		uc.logger.Error("ApproveAppointment: failed to get user id=%d: %v", managerID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.HasRole(identityClient.RoleManager) {
		uc.logger.Warn("ApproveAppointment: user id=%d is not a manager", managerID)
		return ErrPermissionDenied
	}
	return nil
}

// checkEmployeeExists verifies the employee against the roster.
func (uc *UseCase) checkEmployeeExists(ctx context.Context, employeeID int64) error {
	employees, err := uc.identityClient.ListEmployees(ctx)
	if err != nil {
		uc.logger.Error("ApproveAppointment: failed to list employees: %v", err)
		return fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	for _, e := range employees {
		if e.ID == employeeID {
			return nil
		}
	}
	uc.logger.Warn("ApproveAppointment: employee id=%d not on roster", employeeID)
	return ErrEmployeeNotFound
}

// employeeBusy checks the calendar ledger and approved time off for one
// employee over the window. The appointment's own entry is excluded so
// re-approval after an edit does not conflict with itself.
func (uc *UseCase) employeeBusy(ctx context.Context, employeeID int64, window domain.Interval, appointmentID int64) (bool, error) {
	committed, err := uc.calendarRepo.ExistsAt(ctx, employeeID, window.Start, window.End, ptr.Ptr(appointmentID))
	if err != nil {
		uc.logger.Error("ApproveAppointment: failed to check calendar entries: %v", err)
		return false, fmt.Errorf("%w: failed to check calendar entries: %v", ErrInternal, err)
	}
	if committed {
		return true, nil
	}

	timeOff, err := uc.timeOffRepo.ListApprovedOverlapping(ctx, window.Start, window.End)
	if err != nil {
		uc.logger.Error("ApproveAppointment: failed to list time off: %v", err)
		return false, fmt.Errorf("%w: failed to list time off: %v", ErrInternal, err)
	}

	return !domain.EmployeeIsFree(employeeID, window, nil, timeOff, nil), nil
}
