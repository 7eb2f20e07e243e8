package reassign_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	reassignAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reassign_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment id"
	msgMissingUserID        = "missing user id"
	msgPermissionDenied     = "only managers may reassign appointments"
	msgAppointmentNotFound  = "appointment not found"
	msgNotApproved          = "appointment is not approved"
	msgEmployeeNotFound     = "employee not found"
	msgEmployeeBusy         = "employee is not available for this slot"
)

// ReassignRequest is the HTTP request model.
type ReassignRequest struct {
	EmployeeID int64 `json:"employeeId"`
}

// ReassignResponse is the HTTP response model.
type ReassignResponse struct {
	ID              int64  `json:"id"`
	EmployeeID      int64  `json:"employeeId"`
	Status          string `json:"status"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type Handler struct {
	useCase ReassignAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ReassignAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reassign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/reassign - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/reassign - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ReassignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/reassign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reassignAppointment.Request{
		AppointmentID: appointmentID,
		ManagerID:     managerID,
		NewEmployeeID: req.EmployeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, reassignAppointment.ErrPermissionDenied):
			h.logger.Warn("POST /appointments/reassign - Permission denied: user_id=%d", managerID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, reassignAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/reassign - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, reassignAppointment.ErrNotApproved):
			h.logger.Warn("POST /appointments/reassign - Not approved: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotApproved)

		case errors.Is(err, reassignAppointment.ErrEmployeeNotFound):
			h.logger.Warn("POST /appointments/reassign - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, reassignAppointment.ErrEmployeeBusy):
			h.logger.Warn("POST /appointments/reassign - Employee busy: employee_id=%d", req.EmployeeID)
			handlers.RespondConflict(w, msgEmployeeBusy)

		case errors.Is(err, reassignAppointment.ErrInvalidAppointmentID),
			errors.Is(err, reassignAppointment.ErrInvalidEmployeeID):
			h.logger.Warn("POST /appointments/reassign - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments/reassign - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/reassign - Reassigned: appointment_id=%d, employee_id=%d",
		result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, &ReassignResponse{
		ID:              result.ID,
		EmployeeID:      result.EmployeeID,
		Status:          result.Status,
		StartTime:       result.StartTime.Format(time.RFC3339),
		DurationMinutes: result.DurationMinutes,
	})
}
