package book_appointment

import (
	"errors"
	"net/http"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	bookAppointment "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidStartTime    = "invalid start time, expected RFC 3339"
	msgMissingUserID       = "missing user id"
	msgPetNotFound         = "pet not found"
	msgPetNotOwned         = "pet does not belong to you"
	msgPetNotVerified      = "pet profile is not verified yet"
	msgServiceNotFound     = "service not found"
	msgSlotNotOffered      = "start time is not offered for this service"
	msgOutsideHours        = "start time is outside business hours"
	msgStartInPast         = "start time must be in the future"
	msgBeyondHorizon       = "start time is more than 90 days ahead"
	msgDailyLimit          = "you already have the maximum number of appointments that day"
	msgPriceNotConfigured  = "no price configured for this service and pet size"
	msgVoucherInvalid      = "voucher is invalid or already used"
	msgNoEmployeeAvailable = "no groomer is available for this slot"
	msgTimeSlotTaken       = "this pet is already booked at this time"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrPetNotFound):
			h.logger.Warn("POST /appointments - Pet not found: pet_id=%d", req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, bookAppointment.ErrPetNotOwned):
			h.logger.Warn("POST /appointments - Pet not owned: pet_id=%d, client_id=%d", req.PetID, clientID)
			handlers.RespondForbidden(w, msgPetNotOwned)

		case errors.Is(err, bookAppointment.ErrPetNotVerified):
			h.logger.Warn("POST /appointments - Pet not verified: pet_id=%d", req.PetID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPetNotVerified)

		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrStartTimeNotAllowed):
			h.logger.Warn("POST /appointments - Start time not offered: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, bookAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, bookAppointment.ErrStartTimeInPast):
			h.logger.Warn("POST /appointments - Start in past: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, bookAppointment.ErrBeyondBookingHorizon):
			h.logger.Warn("POST /appointments - Beyond horizon: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgBeyondHorizon)

		case errors.Is(err, bookAppointment.ErrDailyLimitReached):
			h.logger.Warn("POST /appointments - Daily limit: client_id=%d", clientID)
			handlers.RespondConflict(w, msgDailyLimit)

		case errors.Is(err, bookAppointment.ErrPriceNotConfigured):
			h.logger.Warn("POST /appointments - Price not configured: service_id=%d", req.ServiceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceNotConfigured)

		case errors.Is(err, bookAppointment.ErrVoucherInvalid):
			h.logger.Warn("POST /appointments - Invalid voucher: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVoucherInvalid)

		case errors.Is(err, bookAppointment.ErrNoEmployeeAvailable):
			h.logger.Warn("POST /appointments - No employee available: client_id=%d", clientID)
			handlers.RespondConflict(w, msgNoEmployeeAvailable)

		case errors.Is(err, bookAppointment.ErrTimeSlotTaken):
			h.logger.Warn("POST /appointments - Time slot taken: pet_id=%d", req.PetID)
			handlers.RespondConflict(w, msgTimeSlotTaken)

		case errors.Is(err, bookAppointment.ErrInvalidClientID),
			errors.Is(err, bookAppointment.ErrInvalidPetID),
			errors.Is(err, bookAppointment.ErrInvalidServiceID),
			errors.Is(err, bookAppointment.ErrInvalidStartTime):
			h.logger.Warn("POST /appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: appointment_id=%d, client_id=%d", result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
