package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    model.Metrics
		want int
	}{
		{
			name: "profitable growing quarter",
			m: model.Metrics{
				ProfitMarginPct: 34.24,
				ExpenseRatioPct: 65.76,
				GrowthPct:       20,
			},
			want: 55, // 30 + 0 + 20 + 5
		},
		{
			name: "strong all-round",
			m: model.Metrics{
				ProfitMarginPct:   40,
				ExpenseRatioPct:   20,
				GrowthPct:         30,
				WorkingCapital:    100000,
				HasWorkingCapital: true,
			},
			want: 80, // 30 + 10 + 20 + 20
		},
		{
			name: "loss making",
			m: model.Metrics{
				ProfitMarginPct: -10,
				ExpenseRatioPct: 110,
				GrowthPct:       -5,
			},
			want: 5, // liquidity floor only
		},
		{
			name: "zero metrics",
			m:    model.Metrics{},
			want: 35, // 0 + 30 + 0 + 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Health(tt.m))
		})
	}
}

func TestHealthBounds(t *testing.T) {
	t.Parallel()

	// Even an absurdly good record cannot exceed 100.
	best := model.Metrics{
		ProfitMarginPct:   1000,
		ExpenseRatioPct:   -1000,
		GrowthPct:         1000,
		WorkingCapital:    1,
		HasWorkingCapital: true,
	}
	assert.LessOrEqual(t, Health(best), 100)

	worst := model.Metrics{
		ProfitMarginPct: -1000,
		ExpenseRatioPct: 1000,
		GrowthPct:       -1000,
		WorkingCapital:  -1,
	}
	assert.GreaterOrEqual(t, Health(worst), 0)
}

func TestHealthMonotonicInMargin(t *testing.T) {
	t.Parallel()

	base := model.Metrics{ProfitMarginPct: 5, ExpenseRatioPct: 60, GrowthPct: 5}
	better := base
	better.ProfitMarginPct = 15

	assert.Greater(t, Health(better), Health(base))
}

func TestComponents(t *testing.T) {
	t.Parallel()

	m := model.Metrics{
		ProfitMarginPct:   15,
		ExpenseRatioPct:   25,
		GrowthPct:         -3,
		WorkingCapital:    5000,
		HasWorkingCapital: true,
	}

	c := Components(m)
	require.Len(t, c, 4)
	assert.Equal(t, 15.0, c["profitability"])
	assert.Equal(t, 5.0, c["cost_efficiency"])
	assert.Equal(t, 0.0, c["growth"])
	assert.Equal(t, 20.0, c["liquidity"])
}
