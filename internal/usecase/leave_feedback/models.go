package leave_feedback

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/journal"
)

// Request модель запроса на отзыв
type Request struct {
	BookingID int64
	Rating    float64
	Review    string
}

// Response бронирование с отзывом и актуальный журнал отзывов филиала
type Response struct {
	Booking        *domain.Booking
	BranchFeedback []domain.FeedbackEntry
	Summary        *journal.Summary
}
