package approve_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	approveAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/approve_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment id"
	msgMissingUserID        = "missing user id"
	msgPermissionDenied     = "only managers may approve appointments"
	msgAppointmentNotFound  = "appointment not found"
	msgNotPending           = "appointment is not pending"
	msgEmployeeNotFound     = "employee not found"
	msgEmployeeBusy         = "employee is not available for this slot"
	msgStartTimeInPast      = "appointment time is in the past"
)

// ApproveRequest is the HTTP request model.
type ApproveRequest struct {
	EmployeeID int64 `json:"employeeId"`
}

// ApproveResponse is the HTTP response model.
type ApproveResponse struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employeeId"`
	Status      string  `json:"status"`
	StartTime   string  `json:"startTime"`
	FinalPrice  float64 `json:"finalPrice"`
	PetName     string  `json:"petName"`
	ServiceName string  `json:"serviceName"`
}

type Handler struct {
	useCase ApproveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ApproveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/approve - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/approve - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ApproveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveAppointment.Request{
		AppointmentID: appointmentID,
		ManagerID:     managerID,
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveAppointment.ErrPermissionDenied):
			h.logger.Warn("POST /appointments/approve - Permission denied: user_id=%d", managerID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, approveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/approve - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, approveAppointment.ErrNotPending):
			h.logger.Warn("POST /appointments/approve - Not pending: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, approveAppointment.ErrEmployeeNotFound):
			h.logger.Warn("POST /appointments/approve - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, approveAppointment.ErrEmployeeBusy):
			h.logger.Warn("POST /appointments/approve - Employee busy: employee_id=%d, appointment_id=%d",
				req.EmployeeID, appointmentID)
			handlers.RespondConflict(w, msgEmployeeBusy)

		case errors.Is(err, approveAppointment.ErrStartTimeInPast):
			h.logger.Warn("POST /appointments/approve - Past start time: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, approveAppointment.ErrInvalidAppointmentID),
			errors.Is(err, approveAppointment.ErrInvalidEmployeeID):
			h.logger.Warn("POST /appointments/approve - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments/approve - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/approve - Approved: appointment_id=%d, employee_id=%d",
		result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, &ApproveResponse{
		ID:          result.ID,
		EmployeeID:  result.EmployeeID,
		Status:      result.Status,
		StartTime:   result.StartTime.Format(time.RFC3339),
		FinalPrice:  result.FinalPrice,
		PetName:     result.PetName,
		ServiceName: result.ServiceName,
	})
}
