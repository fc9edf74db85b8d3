package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/pricing"
)

// Dependencies зависимости сервиса бронирований
type Dependencies struct {
	Bookings  BookingRepository
	IDs       IDGenerator
	Catalog   Catalog
	Pricer    Pricer
	Queue     AppointmentQueue
	History   HistoryRepository
	Feedback  FeedbackRepository
	Publisher EventPublisher
	Metrics   Metrics
	Clock     TimeProvider
	Logger    Logger
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	ids          IDGenerator
	catalog      Catalog
	pricer       Pricer
	queue        AppointmentQueue
	historyRepo  HistoryRepository
	feedbackRepo FeedbackRepository
	publisher    EventPublisher
	metrics      Metrics
	clock        TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(deps Dependencies) *Service {
	return &Service{
		bookingRepo:  deps.Bookings,
		ids:          deps.IDs,
		catalog:      deps.Catalog,
		pricer:       deps.Pricer,
		queue:        deps.Queue,
		historyRepo:  deps.History,
		feedbackRepo: deps.Feedback,
		publisher:    deps.Publisher,
		metrics:      deps.Metrics,
		clock:        deps.Clock,
		logger:       deps.Logger,
	}
}

// Price оценивает выбранные услуги по скидкам филиала: selecting -> priced
func (s *Service) Price(ctx context.Context, req *models.PriceRequest) (*models.Draft, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		s.logger.Warn("Price: empty customer name")
		return nil, fmt.Errorf("%w: customer name is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		s.logger.Warn("Price: customer name is longer than %d characters", domain.MaxCustomerNameLength)
		return nil, fmt.Errorf("%w: customer name is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if len(req.Services) == 0 {
		s.logger.Warn("Price: empty selection for customer=%s", req.CustomerName)
		return nil, ErrEmptySelection
	}

	branch, err := s.catalog.GetBranch(req.BranchKey)
	if err != nil {
		return nil, s.catalogError("Price", err)
	}
	slot, err := s.catalog.GetSlot(req.SlotKey)
	if err != nil {
		return nil, s.catalogError("Price", err)
	}

	lines := s.pricer.Quote(branch.Key, req.Services)
	total := pricing.Sum(lines)

	s.logger.Info("Price: customer=%s branch=%s services=%d total=%d", name, branch.Key, len(lines), total)
	return models.NewDraft(name, branch, slot, lines, total), nil
}

// Confirm подтверждает оцененный черновик: priced -> awaiting_payment -> confirmed.
// Выдает номер, сохраняет бронирование, ставит клиента в очередь и дописывает историю.
// Если какой-то шаг не удался, уже сделанные шаги откатываются и черновик возвращается в priced.
// Выданный номер при этом сгорает: номера уникальны, но не обязаны идти подряд
func (s *Service) Confirm(ctx context.Context, draft *models.Draft, mode domain.PaymentMode) (*domain.Booking, error) {
	if !draft.Transition(domain.StatusPriced, domain.StatusAwaitingPayment) {
		s.logger.Warn("Confirm: draft for customer=%s is in status=%s", draft.CustomerName, draft.Status())
		return nil, fmt.Errorf("%w: cannot confirm draft in status %s", ErrInvalidTransition, draft.Status())
	}

	if !mode.IsValid() {
		s.logger.Warn("Confirm: unknown payment mode=%q, falling back to %s", mode, domain.PaymentCashOnVisit)
		mode = domain.PaymentCashOnVisit
	}

	id, err := s.ids.Next(ctx)
	if err != nil {
		draft.Transition(domain.StatusAwaitingPayment, domain.StatusPriced)
		s.logger.Error("Confirm: failed to allocate booking id: %v", err)
		return nil, fmt.Errorf("%w: Confirm - id allocation: %v", ErrInternal, err)
	}

	now := s.clock.Now()
	booking := &domain.Booking{
		ID:           id,
		CustomerName: draft.CustomerName,
		BranchKey:    draft.Branch.Key,
		Services:     append([]domain.PricedService(nil), draft.Lines...),
		Slot:         draft.Slot,
		Total:        draft.Total,
		PaymentMode:  mode,
		Status:       domain.StatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		draft.Transition(domain.StatusAwaitingPayment, domain.StatusPriced)
		s.logger.Error("Confirm: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if err := s.queue.EnqueueAppointment(ctx, created.CustomerName); err != nil {
		s.logger.Error("Confirm: failed to enqueue customer=%s: %v", created.CustomerName, err)
		s.rollbackConfirm(ctx, draft, created, false)
		return nil, fmt.Errorf("%w: Confirm - queue error: %v", ErrInternal, err)
	}

	lines := make([]string, len(created.Services))
	for i, svc := range created.Services {
		lines[i] = domain.HistoryLine(svc.Name, created.BranchKey)
	}
	if err := s.historyRepo.Append(ctx, created.CustomerName, lines...); err != nil {
		s.logger.Error("Confirm: failed to append history for customer=%s: %v", created.CustomerName, err)
		s.rollbackConfirm(ctx, draft, created, true)
		return nil, fmt.Errorf("%w: Confirm - history error: %v", ErrInternal, err)
	}
	draft.Transition(domain.StatusAwaitingPayment, domain.StatusConfirmed)

	s.metrics.BookingConfirmed(created.BranchKey, string(created.PaymentMode), created.Total)
	if err := s.publisher.BookingConfirmed(ctx, created); err != nil {
		s.logger.Warn("Confirm: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	s.logger.Info("Confirm: booking id=%d confirmed for customer=%s total=%d payment=%s",
		created.ID, created.CustomerName, created.Total, created.PaymentMode)
	return created, nil
}

// rollbackConfirm убирает следы неудачного подтверждения в обратном порядке
func (s *Service) rollbackConfirm(ctx context.Context, draft *models.Draft, created *domain.Booking, enqueued bool) {
	if enqueued {
		if err := s.queue.CancelAppointment(ctx, created.CustomerName); err != nil {
			s.logger.Error("Confirm: rollback - failed to remove customer=%s from queue: %v", created.CustomerName, err)
		}
	}
	if err := s.bookingRepo.Delete(ctx, created.ID); err != nil {
		s.logger.Error("Confirm: rollback - failed to delete booking id=%d: %v", created.ID, err)
	}
	draft.Transition(domain.StatusAwaitingPayment, domain.StatusPriced)
}

// ParsePaymentMode разбирает способ оплаты: UPI, Card, CashOnVisit (без учета регистра)
// или номер пункта меню 1, 2, 3. Всё остальное означает оплату на месте
func ParsePaymentMode(option string) domain.PaymentMode {
	switch strings.ToLower(strings.TrimSpace(option)) {
	case "1", "upi":
		return domain.PaymentUPI
	case "2", "card":
		return domain.PaymentCard
	default:
		return domain.PaymentCashOnVisit
	}
}

// AttachFeedback прикрепляет отзыв к подтвержденному бронированию и пишет его в журнал филиала
func (s *Service) AttachFeedback(ctx context.Context, id int64, rating float64, review string) (*domain.Booking, error) {
	if math.IsNaN(rating) || rating < domain.MinRating || rating > domain.MaxRating {
		s.logger.Warn("AttachFeedback: invalid rating=%v for booking id=%d", rating, id)
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRating, rating)
	}

	now := s.clock.Now()
	updated, err := s.bookingRepo.AttachFeedback(ctx, id, domain.Feedback{Rating: rating, Review: review}, now)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("AttachFeedback: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrFeedbackAlreadyRecorded):
			s.logger.Warn("AttachFeedback: booking id=%d already has feedback", id)
			return nil, ErrAlreadyRecorded
		}
		s.logger.Error("AttachFeedback: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: AttachFeedback - repository error: %v", ErrInternal, err)
	}

	entry := domain.FeedbackEntry{
		BookingID:    updated.ID,
		CustomerName: updated.CustomerName,
		Rating:       rating,
		Review:       review,
		CreatedAt:    now,
	}
	if err := s.feedbackRepo.Append(ctx, updated.BranchKey, entry); err != nil {
		s.logger.Error("AttachFeedback: failed to append feedback for branch=%s: %v", updated.BranchKey, err)
		if derr := s.bookingRepo.DetachFeedback(ctx, id); derr != nil {
			s.logger.Error("AttachFeedback: rollback - failed to detach feedback from booking id=%d: %v", id, derr)
		}
		return nil, fmt.Errorf("%w: AttachFeedback - feedback log error: %v", ErrInternal, err)
	}

	s.metrics.FeedbackRecorded(updated.BranchKey, rating)
	if err := s.publisher.FeedbackRecorded(ctx, updated); err != nil {
		s.logger.Warn("AttachFeedback: failed to publish event for booking id=%d: %v", updated.ID, err)
	}

	s.logger.Info("AttachFeedback: booking id=%d rated %.1f", updated.ID, rating)
	return updated, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// ListByCustomer бронирования клиента в порядке номеров
func (s *Service) ListByCustomer(ctx context.Context, customerName string) ([]*domain.Booking, error) {
	list, err := s.bookingRepo.GetByCustomer(ctx, customerName)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%s: %v", customerName, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

func (s *Service) catalogError(op string, err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	s.logger.Error("%s: catalog error: %v", op, err)
	return fmt.Errorf("%w: %s - catalog error: %v", ErrInternal, op, err)
}
