package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	paymentMessagePaid      = "paid"
	paymentMessageAtCounter = "pay at counter"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string   `json:"customerName"`
	BranchKey    string   `json:"branchKey"`
	SlotKey      string   `json:"slotKey"`
	Services     []string `json:"services"`
	UndoLast     bool     `json:"undoLast,omitempty"`
	PaymentMode  string   `json:"paymentMode"` // "UPI", "Card", "CashOnVisit" или "1".."3"
}

// BookingResponse HTTP response model (данные квитанции)
type BookingResponse struct {
	ID             int64                          `json:"id"`
	CustomerName   string                         `json:"customerName"`
	BranchKey      string                         `json:"branchKey"`
	Slot           handlers.SlotResponse          `json:"slot"`
	Services       []handlers.ServiceLineResponse `json:"services"`
	RemovedService *string                        `json:"removedService,omitempty"`
	Total          int64                          `json:"total"`
	TotalLabel     string                         `json:"totalLabel"` // "Rs.710"
	PaymentMode    string                         `json:"paymentMode"`
	PaymentMessage string                         `json:"paymentMessage"`
	Status         string                         `json:"status"`
	VisitDate      string                         `json:"visitDate"`
	CreatedAt      string                         `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName: r.CustomerName,
		BranchKey:    r.BranchKey,
		SlotKey:      r.SlotKey,
		Services:     r.Services,
		UndoLast:     r.UndoLast,
		PaymentMode:  r.PaymentMode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	msg := paymentMessageAtCounter
	if resp.Paid {
		msg = paymentMessagePaid
	}

	return &BookingResponse{
		ID:             resp.ID,
		CustomerName:   resp.CustomerName,
		BranchKey:      resp.BranchKey,
		Slot:           handlers.FromDomainSlot(resp.Slot),
		Services:       handlers.FromPricedServices(resp.Services),
		RemovedService: resp.Removed,
		Total:          resp.Total,
		TotalLabel:     handlers.PriceLabel(resp.Total),
		PaymentMode:    string(resp.PaymentMode),
		PaymentMessage: msg,
		Status:         resp.Status,
		VisitDate:      resp.VisitDate.Format(domain.DateFormat),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
