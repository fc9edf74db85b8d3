package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	BranchKey string                  `json:"branchKey,omitempty"`
	VisitDate string                  `json:"visitDate"` // дата визита при бронировании сейчас
	Slots     []handlers.SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]handlers.SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = handlers.SlotResponse{Key: s.Key, Label: s.Label}
	}
	return &SlotsResponse{
		BranchKey: resp.BranchKey,
		VisitDate: resp.VisitDate.Format(domain.DateFormat),
		Slots:     slots,
	}
}
