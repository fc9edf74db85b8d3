package journal

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HistoryRepository история посещений клиентов
type HistoryRepository interface {
	ListByCustomer(ctx context.Context, customerName string) ([]string, error)
}

// FeedbackRepository журнал отзывов филиалов
type FeedbackRepository interface {
	ListByBranch(ctx context.Context, branchKey string) ([]domain.FeedbackEntry, error)
}

// Catalog справочник филиалов
type Catalog interface {
	GetBranch(key string) (domain.Branch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
