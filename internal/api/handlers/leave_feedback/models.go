package leave_feedback

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	leaveFeedback "github.com/m04kA/SMC-SalonService/internal/usecase/leave_feedback"
)

// LeaveFeedbackRequest HTTP request model
type LeaveFeedbackRequest struct {
	Rating *float64 `json:"rating"`
	Review string   `json:"review"`
}

// FeedbackResponse HTTP response model: бронирование и журнал отзывов филиала
type FeedbackResponse struct {
	Booking        *handlers.BookingResponse        `json:"booking"`
	BranchFeedback []handlers.FeedbackEntryResponse `json:"branchFeedback"`
	ReviewCount    int                              `json:"reviewCount"`
	AverageRating  float64                          `json:"averageRating"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *leaveFeedback.Response) *FeedbackResponse {
	return &FeedbackResponse{
		Booking:        handlers.FromDomainBooking(resp.Booking),
		BranchFeedback: handlers.FromFeedbackEntries(resp.BranchFeedback),
		ReviewCount:    resp.Summary.Count,
		AverageRating:  resp.Summary.AverageRating,
	}
}
