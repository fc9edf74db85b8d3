package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type staticDiscounts map[string]map[string]int

func (s staticDiscounts) DiscountFor(branchKey, serviceName string) int {
	return s[branchKey][serviceName]
}

var branch1 = staticDiscounts{
	"Branch1": {"Haircut": 10, "Facial": 15, "Spa": 20, "Manicure": 5},
}

func TestEngine_PriceFor(t *testing.T) {
	e := NewEngine(branch1)

	cases := []struct {
		name    string
		service domain.Service
		want    int64
	}{
		{"haircut 10%", domain.Service{Name: "Haircut", BasePrice: 200}, 180},
		{"facial 15%", domain.Service{Name: "Facial", BasePrice: 500}, 425},
		{"manicure 5%", domain.Service{Name: "Manicure", BasePrice: 300}, 285},
		{"no table entry", domain.Service{Name: "Pedicure", BasePrice: 400}, 400},
		{"free service", domain.Service{Name: "Spa", BasePrice: 0}, 0},
		// 99 * 5 / 100 = 4.95, скидка округляется вниз до 4
		{"floor rounding", domain.Service{Name: "Manicure", BasePrice: 99}, 95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.PriceFor("Branch1", tc.service))
		})
	}
}

func TestEngine_PriceFor_MatchesFormulaForAllDiscounts(t *testing.T) {
	for d := 0; d <= 100; d++ {
		e := NewEngine(staticDiscounts{"B": {"X": d}})
		for _, base := range []int64{0, 1, 7, 99, 200, 333, 1000} {
			want := base - (base*int64(d))/100
			assert.Equal(t, want, e.PriceFor("B", domain.Service{Name: "X", BasePrice: base}), "d=%d base=%d", d, base)
		}
	}
}

func TestEngine_TotalFor(t *testing.T) {
	e := NewEngine(branch1)

	total := e.TotalFor("Branch1", []domain.Service{
		{Name: "Haircut", BasePrice: 200},
		{Name: "Spa", BasePrice: 1000},
	})
	assert.Equal(t, int64(980), total)

	assert.Equal(t, int64(0), e.TotalFor("Branch1", nil))
}

func TestEngine_UnknownBranchHasNoDiscount(t *testing.T) {
	e := NewEngine(branch1)
	assert.Equal(t, int64(500), e.PriceFor("Branch7", domain.Service{Name: "Facial", BasePrice: 500}))
}

func TestEngine_Quote(t *testing.T) {
	e := NewEngine(branch1)

	lines := e.Quote("Branch1", []domain.Service{
		{Name: "Facial", BasePrice: 500},
		{Name: "Manicure", BasePrice: 300},
	})

	assert.Equal(t, []domain.PricedService{
		{Name: "Facial", BasePrice: 500, Discount: 15, FinalPrice: 425},
		{Name: "Manicure", BasePrice: 300, Discount: 5, FinalPrice: 285},
	}, lines)
	assert.Equal(t, int64(710), Sum(lines))
}
