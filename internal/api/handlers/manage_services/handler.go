package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidServiceID   = "invalid service id"
	msgMissingUserID      = "missing user id"
	msgAccessDenied       = "only managers may modify the catalog"
	msgServiceNotFound    = "service not found"
	msgDuplicateService   = "a service with this name already exists"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &models.CreateServiceRequest{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		AllowedStartTimes: req.AllowedStartTimes,
	})
	if err != nil {
		h.respondServiceError(w, "POST /services", err)
		return
	}

	h.logger.Info("POST /services - Created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /services - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), &models.UpdateServiceRequest{
		UserID:            userID,
		ServiceID:         serviceID,
		Name:              req.Name,
		Description:       req.Description,
		DurationMinutes:   req.DurationMinutes,
		AllowedStartTimes: req.AllowedStartTimes,
		IsActive:          req.IsActive,
	})
	if err != nil {
		h.respondServiceError(w, "PUT /services", err)
		return
	}

	h.logger.Info("PUT /services - Updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSetActive PATCH /api/v1/services/{serviceId}/active
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /services/active - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /services/active - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /services/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetServiceActive(r.Context(), userID, serviceID, req.Active); err != nil {
		h.respondServiceError(w, "PATCH /services/active", err)
		return
	}

	h.logger.Info("PATCH /services/active - Toggled: service_id=%d, active=%v", serviceID, req.Active)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetPrice PUT /api/v1/services/{serviceId}/prices
func (h *Handler) HandleSetPrice(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /services/prices - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/prices - Invalid service id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req SetPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetPrice(r.Context(), &models.SetPriceRequest{
		UserID:    userID,
		ServiceID: serviceID,
		Size:      req.Size,
		Price:     req.Price,
	}); err != nil {
		h.respondServiceError(w, "PUT /services/prices", err)
		return
	}

	h.logger.Info("PUT /services/prices - Priced: service_id=%d, size=%s", serviceID, req.Size)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", op, err)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: %v", op, err)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrDuplicateService):
		h.logger.Warn("%s - Duplicate name: %v", op, err)
		handlers.RespondConflict(w, msgDuplicateService)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
