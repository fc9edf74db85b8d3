package join_waiting_list

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/queue"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCustomer    = "имя клиента обязательно"
)

// JoinRequest HTTP request model
type JoinRequest struct {
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

// Handle POST /api/v1/waiting-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waiting-list - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.JoinWaitingList(r.Context(), req.CustomerName); err != nil {
		if errors.Is(err, queue.ErrInvalidInput) {
			h.logger.Warn("POST /waiting-list - Empty customer name")
			handlers.RespondBadRequest(w, msgInvalidCustomer)
			return
		}
		h.logger.Error("POST /waiting-list - Failed to join waiting list: customer=%s, error=%v", req.CustomerName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /waiting-list - Customer joined: customer=%s", req.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, req)
}
