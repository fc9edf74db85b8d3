package get_customer_history

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type HistoryService interface {
	HistoryFor(ctx context.Context, customerName string) ([]string, error)
}

type BookingService interface {
	ListByCustomer(ctx context.Context, customerName string) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
