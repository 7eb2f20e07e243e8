package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange  = "invalid date range"
	msgMissingUserID = "missing user id"
	msgAccessDenied  = "only staff may view the schedule"
)

type Handler struct {
	service  AppointmentsService
	location *time.Location
	logger   Logger
}

// NewHandler creates the schedule handler. Dates in query parameters are
// interpreted in the salon's timezone.
func NewHandler(service AppointmentsService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
// Both dates are inclusive.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("from"), h.location)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("to"), h.location)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), &models.GetScheduleRequest{
		UserID:   userID,
		FromDate: from,
		ToDate:   to.AddDate(0, 0, 1),
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /schedule - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid range: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /schedule - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
