package get_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
