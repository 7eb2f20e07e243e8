package get_client_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidUserID  = "invalid user id"
	msgInvalidStatus  = "invalid status filter"
	msgMissingUserID  = "missing user id"
	msgOtherUsersList = "you may only view your own appointment history"
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

// Handle GET /api/v1/users/{userId}/appointments?status=
// Clients may only list their own history.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/appointments - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/appointments - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if clientID != actorID {
		h.logger.Warn("GET /users/appointments - Access denied: actor_id=%d, client_id=%d", actorID, clientID)
		handlers.RespondForbidden(w, msgOtherUsersList)
		return
	}

	req := &models.GetClientAppointmentsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetClientAppointments(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /users/appointments - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/appointments - Failed: client_id=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
