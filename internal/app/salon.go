package app

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/sequence"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	feedbackRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/feedback"
	historyRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/history"
	queueRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/queue"
	"github.com/m04kA/SMC-SalonService/internal/integrations/events"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/journal"
	"github.com/m04kA/SMC-SalonService/internal/service/pricing"
	"github.com/m04kA/SMC-SalonService/internal/service/queue"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock текущее системное время
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Options параметры сборки салона. Пустые поля заменяются реализациями в памяти
type Options struct {
	Catalog   config.Catalog
	Bookings  bookings.BookingRepository
	IDs       bookings.IDGenerator
	Publisher bookings.EventPublisher
	Metrics   *metrics.Metrics
	Clock     bookings.TimeProvider
	Logger    Logger
}

// Salon контекст одного экземпляра сервиса: каталог и все хранилища.
// Глобального состояния нет, тесты собирают собственный экземпляр
type Salon struct {
	Catalog  *catalog.Service
	Pricing  *pricing.Engine
	Bookings *bookings.Service
	Queue    *queue.Service
	Journal  *journal.Service
	Metrics  *metrics.Metrics
}

// New собирает салон из каталога и хранилищ
func New(opts Options) (*Salon, error) {
	cat, err := catalog.NewService(opts.Catalog)
	if err != nil {
		return nil, err
	}

	if opts.Bookings == nil {
		opts.Bookings = bookingRepo.NewMemoryRepository()
	}
	if opts.IDs == nil {
		opts.IDs = sequence.NewGenerator(domain.BookingIDBaseline)
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NoopPublisher{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New("salon_booking")
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}

	engine := pricing.NewEngine(cat)
	queueStore := queueRepo.NewRepository()
	historyStore := historyRepo.NewRepository()
	feedbackStore := feedbackRepo.NewRepository()

	queueService := queue.NewService(queueStore, opts.Metrics, opts.Logger)

	return &Salon{
		Catalog: cat,
		Pricing: engine,
		Bookings: bookings.NewService(bookings.Dependencies{
			Bookings:  opts.Bookings,
			IDs:       opts.IDs,
			Catalog:   cat,
			Pricer:    engine,
			Queue:     queueService,
			History:   historyStore,
			Feedback:  feedbackStore,
			Publisher: opts.Publisher,
			Metrics:   opts.Metrics,
			Clock:     opts.Clock,
			Logger:    opts.Logger,
		}),
		Queue:   queueService,
		Journal: journal.NewService(historyStore, feedbackStore, cat, opts.Logger),
		Metrics: opts.Metrics,
	}, nil
}
