package create_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// Catalog справочник услуг
type Catalog interface {
	GetService(name string) (domain.Service, error)
}

// BookingManager расчет и подтверждение бронирований
type BookingManager interface {
	Price(ctx context.Context, req *models.PriceRequest) (*models.Draft, error)
	Confirm(ctx context.Context, draft *models.Draft, mode domain.PaymentMode) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
