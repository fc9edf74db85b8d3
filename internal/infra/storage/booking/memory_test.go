package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func sampleBooking(id int64, customer string) *domain.Booking {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:           id,
		CustomerName: customer,
		BranchKey:    "Branch1",
		Services: []domain.PricedService{
			{Name: "Facial", BasePrice: 500, Discount: 15, FinalPrice: 425},
		},
		Slot:        domain.Slot{Key: "morning", Label: "Morning (9AM - 12PM)"},
		Total:       425,
		PaymentMode: domain.PaymentUPI,
		Status:      domain.StatusConfirmed,
		CreatedAt:   now,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.CustomerName)
	assert.Equal(t, int64(425), got.Total)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_CreateRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, sampleBooking(1001, "Ravi"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	got, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.CustomerName)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	original := sampleBooking(1001, "Asha")
	_, err := repo.Create(ctx, original)
	require.NoError(t, err)

	original.Services[0].FinalPrice = 1
	got, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	got.Services[0].FinalPrice = 2

	again, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(425), again.Services[0].FinalPrice)
}

func TestMemoryRepository_GetByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, b := range []*domain.Booking{
		sampleBooking(1003, "Asha"),
		sampleBooking(1001, "Asha"),
		sampleBooking(1002, "Ravi"),
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	got, err := repo.GetByCustomer(ctx, "Asha")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1001), got[0].ID)
	assert.Equal(t, int64(1003), got[1].ID)

	none, err := repo.GetByCustomer(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepository_AttachFeedbackOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)

	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	updated, err := repo.AttachFeedback(ctx, 1001, domain.Feedback{Rating: 4.5, Review: "lovely"}, at)
	require.NoError(t, err)
	require.NotNil(t, updated.Feedback)
	assert.Equal(t, 4.5, updated.Feedback.Rating)
	assert.Equal(t, domain.StatusFeedbackRecorded, updated.Status)
	assert.Equal(t, at, updated.UpdatedAt)

	_, err = repo.AttachFeedback(ctx, 1001, domain.Feedback{Rating: 1, Review: "changed my mind"}, at)
	assert.ErrorIs(t, err, ErrFeedbackAlreadyRecorded)

	got, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "lovely", got.Feedback.Review)

	_, err = repo.AttachFeedback(ctx, 7, domain.Feedback{Rating: 3}, at)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_ConcurrentFeedbackOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.AttachFeedback(ctx, 1001, domain.Feedback{Rating: 5}, time.Now()); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestMemoryRepository_DetachFeedbackRestoresConfirmed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)

	// Снимать нечего
	require.NoError(t, repo.DetachFeedback(ctx, 1001))

	_, err = repo.AttachFeedback(ctx, 1001, domain.Feedback{Rating: 4.5}, created.CreatedAt.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.DetachFeedback(ctx, 1001))

	got, err := repo.GetByID(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// После отката отзыв можно оставить снова
	_, err = repo.AttachFeedback(ctx, 1001, domain.Feedback{Rating: 5}, created.CreatedAt)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DetachFeedback(ctx, 42), ErrBookingNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, sampleBooking(1001, "Asha"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1001))
	_, err = repo.GetByID(ctx, 1001)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 1001), ErrBookingNotFound)
}
