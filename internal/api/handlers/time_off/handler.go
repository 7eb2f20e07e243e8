package time_off

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/timeoff"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/service/timeoff/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequestID   = "invalid request id"
	msgInvalidTime        = "invalid time, expected RFC 3339"
	msgMissingUserID      = "missing user id"
	msgAccessDenied       = "access denied"
	msgRequestNotFound    = "time-off request not found"
	msgAlreadyDecided     = "time-off request is already decided"
)

// CreateTimeOffRequest is the HTTP request model for filing time off.
type CreateTimeOffRequest struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
}

// DecideTimeOffRequest is the HTTP request model for deciding a request.
type DecideTimeOffRequest struct {
	Approve bool `json:"approve"`
}

type Handler struct {
	service TimeOffService
	logger  Logger
}

func NewHandler(service TimeOffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/time-off
// The authenticated employee files time off for themselves.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /time-off - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTimeOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.logger.Warn("POST /time-off - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		h.logger.Warn("POST /time-off - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateRequest{
		EmployeeID: employeeID,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, timeoff.ErrAccessDenied):
			h.logger.Warn("POST /time-off - Access denied: employee_id=%d", employeeID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, timeoff.ErrInvalidInput):
			h.logger.Warn("POST /time-off - Invalid interval: employee_id=%d", employeeID)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /time-off - Failed: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-off - Filed: request_id=%d, employee_id=%d", result.ID, employeeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDecide POST /api/v1/time-off/{requestId}/decide
func (h *Handler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	managerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /time-off/decide - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /time-off/decide - Invalid request id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req DecideTimeOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-off/decide - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Decide(r.Context(), &models.DecideRequest{
		ManagerID: managerID,
		RequestID: requestID,
		Approve:   req.Approve,
	})
	if err != nil {
		switch {
		case errors.Is(err, timeoff.ErrAccessDenied):
			h.logger.Warn("POST /time-off/decide - Access denied: manager_id=%d", managerID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, timeoff.ErrRequestNotFound):
			h.logger.Warn("POST /time-off/decide - Not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, timeoff.ErrAlreadyDecided):
			h.logger.Warn("POST /time-off/decide - Already decided: request_id=%d", requestID)
			handlers.RespondConflict(w, msgAlreadyDecided)

		default:
			h.logger.Error("POST /time-off/decide - Failed: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-off/decide - Decided: request_id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
