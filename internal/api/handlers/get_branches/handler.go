package get_branches

import (
	"net/http"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// DiscountResponse скидка филиала на услугу
type DiscountResponse struct {
	ServiceName string `json:"serviceName"`
	Percent     int    `json:"percent"`
}

// BranchResponse филиал со скидками
type BranchResponse struct {
	Key       string             `json:"key"`
	Label     string             `json:"label"`
	Discounts []DiscountResponse `json:"discounts"`
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

// Handle GET /api/v1/branches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches := h.catalog.ListBranches()

	resp := make([]BranchResponse, len(branches))
	for i, b := range branches {
		discounts := make([]DiscountResponse, 0, len(b.Discounts))
		for name, pct := range b.Discounts {
			discounts = append(discounts, DiscountResponse{ServiceName: name, Percent: pct})
		}
		sort.Slice(discounts, func(a, b int) bool { return discounts[a].ServiceName < discounts[b].ServiceName })

		resp[i] = BranchResponse{Key: b.Key, Label: b.Label, Discounts: discounts}
	}

	h.logger.Info("GET /branches - Branches retrieved: count=%d", len(resp))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
