package get_queue

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// QueueResponse состояние очереди записей и листа ожидания
type QueueResponse struct {
	NextAppointment *string  `json:"nextAppointment"`
	Appointments    []string `json:"appointments"`
	NextWaiting     *string  `json:"nextWaiting"`
	WaitingList     []string `json:"waitingList"`
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

// Handle GET /api/v1/queue и GET /api/v1/waiting-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("GET %s - Failed to read queues: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := QueueResponse{
		Appointments: state.Appointments,
		WaitingList:  state.WaitingList,
	}
	if len(state.Appointments) > 0 {
		resp.NextAppointment = &state.Appointments[0]
	}
	if len(state.WaitingList) > 0 {
		resp.NextWaiting = &state.WaitingList[0]
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
