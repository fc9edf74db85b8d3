package events

import "time"

// Типы событий
const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeFeedbackRecorded = "booking.feedback_recorded"
)

// Event сообщение о бронировании, уходящее в Kafka
type Event struct {
	Type         string    `json:"type"`
	BookingID    int64     `json:"bookingId"`
	CustomerName string    `json:"customerName"`
	BranchKey    string    `json:"branchKey"`
	SlotKey      string    `json:"slotKey,omitempty"`
	Services     []string  `json:"services,omitempty"`
	Total        int64     `json:"total"`
	PaymentMode  string    `json:"paymentMode"`
	VisitDate    string    `json:"visitDate,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	Review       *string   `json:"review,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}
