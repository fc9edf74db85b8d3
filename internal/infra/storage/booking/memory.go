package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository хранит бронирования в памяти процесса.
// Все операции атомарны относительно друг друга; наружу отдаются только копии
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[int64]*domain.Booking
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[int64]*domain.Booking)}
}

// Create сохраняет новое бронирование
func (r *MemoryRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := booking.Clone()
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	r.bookings[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.Clone(), nil
}

// GetByCustomer получает бронирования клиента в порядке номеров
func (r *MemoryRepository) GetByCustomer(_ context.Context, customerName string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.CustomerName == customerName {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AttachFeedback прикрепляет отзыв, если его еще нет (check-and-set под одной блокировкой)
func (r *MemoryRepository) AttachFeedback(_ context.Context, id int64, feedback domain.Feedback, at time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !b.CanAttachFeedback() {
		return nil, ErrFeedbackAlreadyRecorded
	}

	fb := feedback
	b.Feedback = &fb
	b.Status = domain.StatusFeedbackRecorded
	b.UpdatedAt = at

	return b.Clone(), nil
}

// DetachFeedback снимает отзыв и возвращает бронирование в статус confirmed.
// До отзыва бронирование не меняется, поэтому updated_at восстанавливается из created_at
func (r *MemoryRepository) DetachFeedback(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	if !b.HasFeedback() {
		return nil
	}

	b.Feedback = nil
	b.Status = domain.StatusConfirmed
	b.UpdatedAt = b.CreatedAt
	return nil
}

// Delete удаляет бронирование
func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}
