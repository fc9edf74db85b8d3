package get_branch_feedback

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type JournalService interface {
	FeedbackFor(ctx context.Context, branchKey string) ([]domain.FeedbackEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
