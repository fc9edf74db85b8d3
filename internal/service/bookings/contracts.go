package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerName string) ([]*domain.Booking, error)
	AttachFeedback(ctx context.Context, id int64, feedback domain.Feedback, at time.Time) (*domain.Booking, error)
	DetachFeedback(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// IDGenerator выдает номера бронирований
type IDGenerator interface {
	Next(ctx context.Context) (int64, error)
}

// Catalog справочник филиалов и слотов
type Catalog interface {
	GetBranch(key string) (domain.Branch, error)
	GetSlot(key string) (domain.Slot, error)
}

// Pricer считает цены со скидкой филиала
type Pricer interface {
	Quote(branchKey string, services []domain.Service) []domain.PricedService
}

// AppointmentQueue очередь записей на прием
type AppointmentQueue interface {
	EnqueueAppointment(ctx context.Context, customerName string) error
	CancelAppointment(ctx context.Context, customerName string) error
}

// HistoryRepository история посещений клиентов
type HistoryRepository interface {
	Append(ctx context.Context, customerName string, lines ...string) error
}

// FeedbackRepository журнал отзывов филиалов
type FeedbackRepository interface {
	Append(ctx context.Context, branchKey string, entry domain.FeedbackEntry) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	BookingConfirmed(ctx context.Context, b *domain.Booking) error
	FeedbackRecorded(ctx context.Context, b *domain.Booking) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	BookingConfirmed(branch, paymentMode string, total int64)
	FeedbackRecorded(branch string, rating float64)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
