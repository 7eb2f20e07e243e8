package get_pending_appointments

import (
	"errors"
	"net/http"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments"
)

const (
	msgMissingUserID = "missing user id"
	msgAccessDenied  = "only managers may view the pending queue"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/pending - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetPendingAppointments(r.Context(), userID)
	if err != nil {
		if errors.Is(err, appointments.ErrAccessDenied) {
			h.logger.Warn("GET /appointments/pending - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /appointments/pending - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
