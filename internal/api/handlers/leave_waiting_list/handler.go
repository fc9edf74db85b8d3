package leave_waiting_list

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgWaitingListEmpty = "лист ожидания пуст"

// LeftResponse клиент, снятый с головы листа ожидания
type LeftResponse struct {
	CustomerName string `json:"customerName"`
}

type Handler struct {
	service QueueService
	logger  Logger
}

func NewHandler(service QueueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/waiting-list/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name, ok, err := h.service.LeaveWaitingList(r.Context())
	if err != nil {
		h.logger.Error("POST /waiting-list/next - Failed to pop waiting list: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if !ok {
		h.logger.Info("POST /waiting-list/next - Waiting list is empty")
		handlers.RespondNotFound(w, msgWaitingListEmpty)
		return
	}

	h.logger.Info("POST /waiting-list/next - Customer left waiting list: customer=%s", name)
	handlers.RespondJSON(w, http.StatusOK, LeftResponse{CustomerName: name})
}
