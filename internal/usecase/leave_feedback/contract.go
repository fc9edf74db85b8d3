package leave_feedback

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingManager прикрепление отзыва к бронированию
type BookingManager interface {
	AttachFeedback(ctx context.Context, id int64, rating float64, review string) (*domain.Booking, error)
}

// Journal журнал отзывов филиала
type Journal interface {
	FeedbackFor(ctx context.Context, branchKey string) ([]domain.FeedbackEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
