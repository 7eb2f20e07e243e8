package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/domain"
	getAvailableSlots "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "invalid service id"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange     = "invalid date range"
	msgServiceNotFound  = "service not found"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler creates the availability handler. Dates in query parameters
// are interpreted in the salon's timezone.
func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		h.respondUseCaseError(w, serviceID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleRange GET /api/v1/services/{serviceId}/available-slots/range?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleRange(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots/range - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	from, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("from"), h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots/range - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("to"), h.location)
	if err != nil {
		h.logger.Warn("GET /available-slots/range - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ExecuteRange(r.Context(), &getAvailableSlots.RangeRequest{
		ServiceID: serviceID,
		FromDate:  from,
		ToDate:    to,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidDateRange) {
			h.logger.Warn("GET /available-slots/range - Invalid range: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.respondUseCaseError(w, serviceID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseRangeResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, serviceID int64, err error) {
	switch {
	case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
		h.logger.Warn("GET /available-slots - Service not found: service_id=%d", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, getAvailableSlots.ErrInvalidServiceID),
		errors.Is(err, getAvailableSlots.ErrInvalidDate):
		h.logger.Warn("GET /available-slots - Invalid request: service_id=%d, error=%v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	default:
		h.logger.Error("GET /available-slots - Failed: service_id=%d, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
	}
}
