package handlers

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceLineResponse строка бронирования с ценой на момент бронирования
type ServiceLineResponse struct {
	Name       string `json:"name"`
	BasePrice  int64  `json:"basePrice"`
	Discount   int    `json:"discount"`
	FinalPrice int64  `json:"finalPrice"`
}

// SlotResponse временной слот
type SlotResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FeedbackResponse отзыв к бронированию
type FeedbackResponse struct {
	Rating float64 `json:"rating"`
	Review string  `json:"review"`
}

// BookingResponse бронирование в HTTP ответах
type BookingResponse struct {
	ID           int64                 `json:"id"`
	CustomerName string                `json:"customerName"`
	BranchKey    string                `json:"branchKey"`
	Slot         SlotResponse          `json:"slot"`
	Services     []ServiceLineResponse `json:"services"`
	Total        int64                 `json:"total"`
	PaymentMode  string                `json:"paymentMode"`
	Status       string                `json:"status"`
	VisitDate    string                `json:"visitDate"` // "2025-10-15"
	Feedback     *FeedbackResponse     `json:"feedback,omitempty"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}

// FeedbackEntryResponse запись журнала отзывов филиала
type FeedbackEntryResponse struct {
	BookingID    int64   `json:"bookingId"`
	CustomerName string  `json:"customerName"`
	Rating       float64 `json:"rating"`
	Review       string  `json:"review"`
	CreatedAt    string  `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		BranchKey:    b.BranchKey,
		Slot:         FromDomainSlot(b.Slot),
		Services:     FromPricedServices(b.Services),
		Total:        b.Total,
		PaymentMode:  string(b.PaymentMode),
		Status:       string(b.Status),
		VisitDate:    b.VisitDate().Format(domain.DateFormat),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
	if b.Feedback != nil {
		resp.Feedback = &FeedbackResponse{Rating: b.Feedback.Rating, Review: b.Feedback.Review}
	}
	return resp
}

func FromDomainSlot(s domain.Slot) SlotResponse {
	return SlotResponse{Key: s.Key, Label: s.Label}
}

func FromPricedServices(lines []domain.PricedService) []ServiceLineResponse {
	out := make([]ServiceLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ServiceLineResponse{
			Name:       l.Name,
			BasePrice:  l.BasePrice,
			Discount:   l.Discount,
			FinalPrice: l.FinalPrice,
		}
	}
	return out
}

func FromFeedbackEntries(entries []domain.FeedbackEntry) []FeedbackEntryResponse {
	out := make([]FeedbackEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = FeedbackEntryResponse{
			BookingID:    e.BookingID,
			CustomerName: e.CustomerName,
			Rating:       e.Rating,
			Review:       e.Review,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// PriceLabel цена для отображения клиенту
func PriceLabel(amount int64) string {
	return "Rs." + strconv.FormatInt(amount, 10)
}
