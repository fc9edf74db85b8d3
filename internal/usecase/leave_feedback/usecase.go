package leave_feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/service/bookings"
	"github.com/m04kA/SMC-SalonService/internal/service/journal"
)

// UseCase use case для отзыва о посещении
type UseCase struct {
	bookings BookingManager
	journal  Journal
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookings BookingManager, journal Journal, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		journal:  journal,
		logger:   logger,
	}
}

// Execute прикрепляет отзыв и возвращает обновленный журнал филиала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LeaveFeedback: booking=%d, rating=%v", req.BookingID, req.Rating)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LeaveFeedback: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookings.AttachFeedback(ctx, req.BookingID, req.Rating, strings.TrimSpace(req.Review))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidRating):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRating, err)
		case errors.Is(err, bookings.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookings.ErrAlreadyRecorded):
			return nil, ErrAlreadyRecorded
		}
		uc.logger.Error("LeaveFeedback: failed to attach feedback to booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to attach feedback: %v", ErrInternal, err)
	}

	entries, err := uc.journal.FeedbackFor(ctx, booking.BranchKey)
	if err != nil {
		uc.logger.Error("LeaveFeedback: failed to read feedback of branch=%s: %v", booking.BranchKey, err)
		return nil, fmt.Errorf("%w: failed to read branch feedback: %v", ErrInternal, err)
	}

	uc.logger.Info("LeaveFeedback: booking=%d rated, branch=%s now has %d reviews",
		booking.ID, booking.BranchKey, len(entries))

	return &Response{
		Booking:        booking,
		BranchFeedback: entries,
		Summary:        journal.Summarize(booking.BranchKey, entries),
	}, nil
}
