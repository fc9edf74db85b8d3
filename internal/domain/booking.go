package domain

import "time"

// BookingStatus represents the state of a booking attempt.
// Выбор услуг (selecting) живет только в selection.Ledger и статусом не хранится
type BookingStatus string

const (
	StatusPriced           BookingStatus = "priced"
	StatusAwaitingPayment  BookingStatus = "awaiting_payment"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusFeedbackRecorded BookingStatus = "feedback_recorded"
)

// PaymentMode способ оплаты. Оплата только фиксируется, не проводится
type PaymentMode string

const (
	PaymentUPI         PaymentMode = "UPI"
	PaymentCard        PaymentMode = "Card"
	PaymentCashOnVisit PaymentMode = "CashOnVisit"
)

// IsPrepaid returns true if the payment is taken at booking time
func (m PaymentMode) IsPrepaid() bool {
	return m == PaymentUPI || m == PaymentCard
}

// IsValid returns true for one of the three known payment modes
func (m PaymentMode) IsValid() bool {
	return m == PaymentUPI || m == PaymentCard || m == PaymentCashOnVisit
}

// Feedback отзыв клиента, прикрепляется к бронированию не более одного раза
type Feedback struct {
	Rating float64
	Review string
}

// Booking represents a confirmed salon booking
type Booking struct {
	ID           int64
	CustomerName string
	BranchKey    string
	Services     []PricedService // Снимок цен на момент бронирования
	Slot         Slot
	Total        int64
	PaymentMode  PaymentMode
	Status       BookingStatus
	Feedback     *Feedback

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFeedback returns true if feedback has already been attached
func (b *Booking) HasFeedback() bool {
	return b.Feedback != nil
}

// CanAttachFeedback returns true if the booking accepts feedback
func (b *Booking) CanAttachFeedback() bool {
	return b.Status == StatusConfirmed && b.Feedback == nil
}

// VisitDate returns the day the customer is expected at the branch
func (b *Booking) VisitDate() time.Time {
	return VisitDateFor(b.CreatedAt)
}

// ServiceNames returns booked service names in selection order
func (b *Booking) ServiceNames() []string {
	names := make([]string, len(b.Services))
	for i, s := range b.Services {
		names[i] = s.Name
	}
	return names
}

// Clone returns a deep copy, so callers cannot mutate stored state
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.Services = append([]PricedService(nil), b.Services...)
	if b.Feedback != nil {
		fb := *b.Feedback
		c.Feedback = &fb
	}
	return &c
}

// VisitDateFor применяет бизнес-правило "визит через два дня после бронирования"
func VisitDateFor(confirmedAt time.Time) time.Time {
	d := confirmedAt.AddDate(0, 0, VisitOffsetDays)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// HistoryLine строка истории клиента: "<услуга> at <филиал>"
func HistoryLine(serviceName, branchKey string) string {
	return serviceName + " at " + branchKey
}

// FeedbackEntry запись в журнале отзывов филиала
type FeedbackEntry struct {
	BookingID    int64
	CustomerName string
	Rating       float64
	Review       string
	CreatedAt    time.Time
}
