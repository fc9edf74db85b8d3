package serve_next_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgQueueEmpty = "очередь записей пуста"

// ServedResponse клиент, снятый с головы очереди
type ServedResponse struct {
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

// Handle POST /api/v1/queue/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name, ok, err := h.service.DequeueAppointment(r.Context())
	if err != nil {
		h.logger.Error("POST /queue/next - Failed to dequeue: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if !ok {
		h.logger.Info("POST /queue/next - Queue is empty")
		handlers.RespondNotFound(w, msgQueueEmpty)
		return
	}

	h.logger.Info("POST /queue/next - Customer served: customer=%s", name)
	handlers.RespondJSON(w, http.StatusOK, ServedResponse{CustomerName: name})
}
