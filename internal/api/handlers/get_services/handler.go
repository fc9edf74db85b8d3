package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceLabel string `json:"priceLabel"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.ListServices()

	resp := make([]ServiceResponse, len(services))
	for i, s := range services {
		resp[i] = ServiceResponse{Name: s.Name, Price: s.BasePrice, PriceLabel: handlers.PriceLabel(s.BasePrice)}
	}

	h.logger.Info("GET /services - Services retrieved: count=%d", len(resp))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
