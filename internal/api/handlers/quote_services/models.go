package quote_services

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	quoteServices "github.com/m04kA/SMC-SalonService/internal/usecase/quote_services"
)

// QuoteLineResponse услуга с ценой в филиале
type QuoteLineResponse struct {
	handlers.ServiceLineResponse
	PriceLabel string `json:"priceLabel"` // цена после скидки, "Rs.425"
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	BranchKey   string              `json:"branchKey"`
	BranchLabel string              `json:"branchLabel"`
	Services    []QuoteLineResponse `json:"services"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteServices.Response) *QuoteResponse {
	lines := handlers.FromPricedServices(resp.Lines)
	out := make([]QuoteLineResponse, len(lines))
	for i, l := range lines {
		out[i] = QuoteLineResponse{ServiceLineResponse: l, PriceLabel: handlers.PriceLabel(l.FinalPrice)}
	}
	return &QuoteResponse{
		BranchKey:   resp.Branch.Key,
		BranchLabel: resp.Branch.Label,
		Services:    out,
	}
}
