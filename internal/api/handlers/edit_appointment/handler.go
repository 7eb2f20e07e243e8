package edit_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	editAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/edit_appointment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidStartTime     = "invalid start time, expected RFC 3339"
	msgMissingUserID        = "missing user id"
	msgAppointmentNotFound  = "appointment not found"
	msgPermissionDenied     = "you may only edit your own appointments"
	msgNotEditable          = "appointment can no longer be edited"
	msgEditLimit            = "edit limit reached for this appointment"
	msgTooLate              = "appointments can only be edited more than 24 hours before start"
	msgServiceNotFound      = "service not found"
	msgSlotNotOffered       = "start time is not offered for this service"
	msgOutsideHours         = "start time is outside business hours"
	msgStartInPast          = "start time must be in the future"
	msgBeyondHorizon        = "start time is more than 90 days ahead"
	msgDailyLimit           = "you already have the maximum number of appointments that day"
	msgPriceNotConfigured   = "no price configured for this service and pet size"
	msgNoEmployeeAvailable  = "no groomer is available for this slot"
)

// EditRequest is the HTTP request model.
type EditRequest struct {
	ServiceID int64  `json:"serviceId"`
	StartTime string `json:"startTime"` // RFC 3339
}

// EditResponse is the HTTP response model.
type EditResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	EditCount       int     `json:"editCount"`
	EditsRemaining  int     `json:"editsRemaining"`
	FinalPrice      float64 `json:"finalPrice"`
	ServiceName     string  `json:"serviceName"`
}

type Handler struct {
	useCase EditAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase EditAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req EditRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.logger.Warn("PATCH /appointments - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &editAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      clientID,
		ServiceID:     req.ServiceID,
		StartTime:     startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, editAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, editAppointment.ErrPermissionDenied):
			h.logger.Warn("PATCH /appointments - Permission denied: appointment_id=%d, client_id=%d",
				appointmentID, clientID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, editAppointment.ErrNotEditable):
			h.logger.Warn("PATCH /appointments - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, editAppointment.ErrEditLimitReached):
			h.logger.Warn("PATCH /appointments - Edit limit: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgEditLimit)

		case errors.Is(err, editAppointment.ErrTooLate):
			h.logger.Warn("PATCH /appointments - Too late to edit: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgTooLate)

		case errors.Is(err, editAppointment.ErrServiceNotFound):
			h.logger.Warn("PATCH /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, editAppointment.ErrStartTimeNotAllowed):
			h.logger.Warn("PATCH /appointments - Start time not offered: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, editAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /appointments - Outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, editAppointment.ErrStartTimeInPast):
			h.logger.Warn("PATCH /appointments - Start in past: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, editAppointment.ErrBeyondBookingHorizon):
			h.logger.Warn("PATCH /appointments - Beyond horizon: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		case errors.Is(err, editAppointment.ErrDailyLimitReached):
			h.logger.Warn("PATCH /appointments - Daily limit: client_id=%d", clientID)
			handlers.RespondConflict(w, msgDailyLimit)

		case errors.Is(err, editAppointment.ErrPriceNotConfigured):
			h.logger.Warn("PATCH /appointments - Price not configured: service_id=%d", req.ServiceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotConfigured)

		case errors.Is(err, editAppointment.ErrNoEmployeeAvailable):
			h.logger.Warn("PATCH /appointments - No employee available: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNoEmployeeAvailable)

		case errors.Is(err, editAppointment.ErrInvalidAppointmentID),
			errors.Is(err, editAppointment.ErrInvalidServiceID),
			errors.Is(err, editAppointment.ErrInvalidStartTime):
			h.logger.Warn("PATCH /appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments - Edited: appointment_id=%d, edits_remaining=%d",
		result.ID, result.EditsRemaining)
	handlers.RespondJSON(w, http.StatusOK, &EditResponse{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		StartTime:       result.StartTime.Format(time.RFC3339),
		DurationMinutes: result.DurationMinutes,
		Status:          result.Status,
		EditCount:       result.EditCount,
		EditsRemaining:  result.EditsRemaining,
		FinalPrice:      result.FinalPrice,
		ServiceName:     result.ServiceName,
	})
}
