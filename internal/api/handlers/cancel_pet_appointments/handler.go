package cancel_pet_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/handlers"
	"github.com/kerem-haeger/PetGroom-BookingService/internal/api/middleware"
	cancelPetAppointments "github.com/kerem-haeger/PetGroom-BookingService/internal/usecase/cancel_pet_appointments"
)

const (
	msgInvalidPetID  = "invalid pet id"
	msgMissingUserID = "missing user id"
)

// CascadeResponse is the HTTP response model.
type CascadeResponse struct {
	PetID          int64   `json:"petId"`
	CancelledCount int     `json:"cancelledCount"`
	CancelledIDs   []int64 `json:"cancelledIds"`
}

type Handler struct {
	useCase CancelPetAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase CancelPetAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /internal/v1/pets/{petId}/cancel-appointments
// Called by the pet-profile service when a pet is deleted.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /pets/cancel-appointments - Missing user id in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	petID, err := strconv.ParseInt(mux.Vars(r)["petId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /pets/cancel-appointments - Invalid pet id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPetID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelPetAppointments.Request{
		PetID:   petID,
		ActorID: actorID,
	})
	if err != nil {
		if errors.Is(err, cancelPetAppointments.ErrInvalidPetID) {
			h.logger.Warn("POST /pets/cancel-appointments - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPetID)
			return
		}
		h.logger.Error("POST /pets/cancel-appointments - Failed: pet_id=%d, error=%v", petID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /pets/cancel-appointments - Cascade done: pet_id=%d, cancelled=%d",
		result.PetID, result.CancelledCount)
	handlers.RespondJSON(w, http.StatusOK, &CascadeResponse{
		PetID:          result.PetID,
		CancelledCount: result.CancelledCount,
		CancelledIDs:   result.CancelledIDs,
	})
}
