package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBranchKey = "некорректный ключ филиала"
	msgBranchNotFound   = "филиал не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: branchKey (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchKey := r.URL.Query().Get("branchKey")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{BranchKey: branchKey})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid branch key: %q", branchKey)
			handlers.RespondBadRequest(w, msgInvalidBranchKey)

		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /slots - Branch not found: branch=%s", branchKey)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /slots - Failed to get slots: branch=%s, error=%v", branchKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: branch=%q, count=%d", branchKey, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
