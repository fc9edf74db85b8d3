package quote_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	quoteServices "github.com/m04kA/SMC-SalonService/internal/usecase/quote_services"
)

const msgBranchNotFound = "филиал не найден"

type Handler struct {
	useCase QuoteServicesUseCase
	logger  Logger
}

func NewHandler(useCase QuoteServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchKey}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchKey := mux.Vars(r)["branchKey"]

	result, err := h.useCase.Execute(r.Context(), &quoteServices.Request{BranchKey: branchKey})
	if err != nil {
		if errors.Is(err, quoteServices.ErrBranchNotFound) {
			h.logger.Warn("GET /branches/{key}/services - Branch not found: branch=%s", branchKey)
			handlers.RespondNotFound(w, msgBranchNotFound)
			return
		}
		h.logger.Error("GET /branches/{key}/services - Failed to quote: branch=%s, error=%v", branchKey, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{key}/services - Quote built: branch=%s, services=%d", branchKey, len(result.Lines))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
