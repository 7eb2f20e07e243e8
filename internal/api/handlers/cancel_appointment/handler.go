package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	cancelAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgMissingUserID        = "missing user id"
	msgAppointmentNotFound  = "appointment not found"
	msgPermissionDenied     = "you may only cancel your own appointments"
	msgNotActive            = "appointment is not active"
	msgTooLate              = "appointments can only be cancelled more than 24 hours before start"
)

// CancelResponse is the HTTP response model.
type CancelResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/cancel - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/cancel - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		AppointmentID: appointmentID,
		ActorID:       actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/cancel - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, cancelAppointment.ErrPermissionDenied):
			h.logger.Warn("POST /appointments/cancel - Permission denied: appointment_id=%d, actor_id=%d",
				appointmentID, actorID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, cancelAppointment.ErrNotActive):
			h.logger.Warn("POST /appointments/cancel - Not active: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, cancelAppointment.ErrTooLate):
			h.logger.Warn("POST /appointments/cancel - Too late: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgTooLate)

		case errors.Is(err, cancelAppointment.ErrInvalidAppointmentID):
			h.logger.Warn("POST /appointments/cancel - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("POST /appointments/cancel - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel - Cancelled: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, &CancelResponse{
		ID:     result.ID,
		Status: result.Status,
	})
}
