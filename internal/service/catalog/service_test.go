package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/config"
)

func newDefault(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(config.DefaultCatalog())
	require.NoError(t, err)
	return s
}

func TestService_ListsKeepConfigOrder(t *testing.T) {
	s := newDefault(t)

	branches := s.ListBranches()
	require.Len(t, branches, 4)
	assert.Equal(t, "Branch1", branches[0].Key)
	assert.Equal(t, "Branch4", branches[3].Key)

	slots := s.ListSlots()
	require.Len(t, slots, 3)
	assert.Equal(t, "Morning (9AM - 12PM)", slots[0].Label)

	services := s.ListServices()
	require.Len(t, services, 8)
	assert.Equal(t, "Haircut", services[0].Name)
	assert.Equal(t, int64(700), services[7].BasePrice)
}

func TestService_LookupsFailWithNotFound(t *testing.T) {
	s := newDefault(t)

	_, err := s.GetBranch("Branch9")
	assert.ErrorIs(t, err, ErrBranchNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetSlot("midnight")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetService("Tattoo")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	svc, err := s.GetService("Spa")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), svc.BasePrice)
}

func TestService_DiscountForDefaultsToZero(t *testing.T) {
	s := newDefault(t)

	assert.Equal(t, 15, s.DiscountFor("Branch1", "Facial"))
	assert.Equal(t, 0, s.DiscountFor("Branch1", "Pedicure"))
	assert.Equal(t, 0, s.DiscountFor("Unknown", "Facial"))
}

func TestService_ReturnedBranchIsACopy(t *testing.T) {
	s := newDefault(t)

	b, err := s.GetBranch("Branch1")
	require.NoError(t, err)
	b.Discounts["Haircut"] = 99

	assert.Equal(t, 10, s.DiscountFor("Branch1", "Haircut"))
}

func TestNewService_RejectsInvalidCatalog(t *testing.T) {
	_, err := NewService(config.Catalog{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
