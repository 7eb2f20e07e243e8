package reject_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	rejectAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/reject_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgMissingUserID        = "missing user id"
	msgPermissionDenied     = "only managers may reject appointments"
	msgAppointmentNotFound  = "appointment not found"
	msgNotPending           = "appointment is not pending"
)

// RejectResponse is the HTTP response model.
type RejectResponse struct {
	ID             int64  `json:"id"`
	Status         string `json:"status"`
	EditsRemaining int    `json:"editsRemaining"`
}

type Handler struct {
	useCase RejectAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RejectAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/reject - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/reject - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectAppointment.Request{
		AppointmentID: appointmentID,
		ManagerID:     managerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectAppointment.ErrPermissionDenied):
			h.logger.Warn("POST /appointments/reject - Permission denied: user_id=%d", managerID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, rejectAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/reject - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rejectAppointment.ErrNotPending):
			h.logger.Warn("POST /appointments/reject - Not pending: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, rejectAppointment.ErrInvalidAppointmentID):
			h.logger.Warn("POST /appointments/reject - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("POST /appointments/reject - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/reject - Rejected: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, &RejectResponse{
		ID:             result.ID,
		Status:         result.Status,
		EditsRemaining: result.EditsRemaining,
	})
}
