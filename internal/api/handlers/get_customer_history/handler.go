package get_customer_history

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgInvalidCustomer = "некорректное имя клиента"

// HistoryResponse история посещений и бронирования клиента
type HistoryResponse struct {
	CustomerName string                      `json:"customerName"`
	History      []string                    `json:"history"`
	Bookings     []*handlers.BookingResponse `json:"bookings"`
}

type Handler struct {
	history  HistoryService
	bookings BookingService
	logger   Logger
}

func NewHandler(history HistoryService, bookings BookingService, logger Logger) *Handler {
	return &Handler{
		history:  history,
		bookings: bookings,
		logger:   logger,
	}
}

// Handle GET /api/v1/customers/{customerName}/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customer := strings.TrimSpace(mux.Vars(r)["customerName"])
	if customer == "" {
		h.logger.Warn("GET /customers/{name}/history - Empty customer name")
		handlers.RespondBadRequest(w, msgInvalidCustomer)
		return
	}

	lines, err := h.history.HistoryFor(r.Context(), customer)
	if err != nil {
		h.logger.Error("GET /customers/{name}/history - Failed to get history: customer=%s, error=%v", customer, err)
		handlers.RespondInternalError(w)
		return
	}

	list, err := h.bookings.ListByCustomer(r.Context(), customer)
	if err != nil {
		h.logger.Error("GET /customers/{name}/history - Failed to get bookings: customer=%s, error=%v", customer, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := HistoryResponse{
		CustomerName: customer,
		History:      lines,
		Bookings:     make([]*handlers.BookingResponse, len(list)),
	}
	for i, b := range list {
		resp.Bookings[i] = handlers.FromDomainBooking(b)
	}

	h.logger.Info("GET /customers/{name}/history - History retrieved: customer=%s, lines=%d", customer, len(lines))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
