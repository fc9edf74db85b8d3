package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func book(t *testing.T, s *Salon, customer string) *domain.Booking {
	t.Helper()
	ctx := context.Background()

	haircut, err := s.Catalog.GetService("Haircut")
	require.NoError(t, err)
	draft, err := s.Bookings.Price(ctx, &models.PriceRequest{
		CustomerName: customer,
		BranchKey:    "Branch1",
		SlotKey:      "morning",
		Services:     []domain.Service{haircut},
	})
	require.NoError(t, err)
	b, err := s.Bookings.Confirm(ctx, draft, domain.PaymentCard)
	require.NoError(t, err)
	return b
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a, err := New(Options{Catalog: config.DefaultCatalog(), Logger: logger.NewNop()})
	require.NoError(t, err)
	b, err := New(Options{Catalog: config.DefaultCatalog(), Logger: logger.NewNop()})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), book(t, a, "Asha").ID)
	assert.Equal(t, int64(1002), book(t, a, "Ravi").ID)
	assert.Equal(t, int64(1001), book(t, b, "Meera").ID)

	stateA, err := a.Queue.Snapshot(context.Background())
	require.NoError(t, err)
	stateB, err := b.Queue.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Ravi"}, stateA.Appointments)
	assert.Equal(t, []string{"Meera"}, stateB.Appointments)
}

func TestNew_InvalidCatalog(t *testing.T) {
	_, err := New(Options{Catalog: config.Catalog{}, Logger: logger.NewNop()})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
