package credit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{100, "AAA"},
		{85, "AAA"}, // floor is inclusive
		{84.999, "AA"},
		{75, "AA"},
		{74.999, "A"},
		{65, "A"},
		{64.999, "BBB"},
		{50, "BBB"},
		{49.999, "B"},
		{0, "B"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.score).Rating, "score=%v", tt.score)
	}
}

func TestAssessDefaultRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score     float64
		wantProb  float64
		wantLevel string
	}{
		{90, 0, "Low"}, // 100 - 108 floors at 0
		{80, 4, "Low"},
		{60, 28, "Medium"},
		{40, 52, "High"},
		{10, 88, "High"},
	}

	for _, tt := range tests {
		risk := AssessDefaultRisk(tt.score)
		assert.InDelta(t, tt.wantProb, risk.ProbabilityPct, 1e-9, "score=%v", tt.score)
		assert.Equal(t, tt.wantLevel, risk.Level, "score=%v", tt.score)
		assert.NotEmpty(t, risk.Interpretation)
	}
}

func TestLoanMatrixThresholds(t *testing.T) {
	t.Parallel()

	// 50 is the exact term_loan/overdraft threshold: strict greater-than
	// means both stay ineligible.
	offers := LoanMatrix(50, 1_000_000)
	require.Len(t, offers, 5)

	byType := make(map[string]LoanOffer, len(offers))
	for _, o := range offers {
		byType[o.Type] = o
	}

	assert.True(t, byType["working_capital_loan"].Eligible)
	assert.False(t, byType["term_loan"].Eligible)
	assert.False(t, byType["overdraft_facility"].Eligible)
	assert.True(t, byType["equipment_finance"].Eligible)
	assert.True(t, byType["invoice_discounting"].Eligible)

	assert.Equal(t, 0.0, byType["term_loan"].ApprovalPct)
}

func TestLoanMatrixAmountsAndCollateral(t *testing.T) {
	t.Parallel()

	offers := LoanMatrix(80, 1_000_000)
	byType := make(map[string]LoanOffer, len(offers))
	for _, o := range offers {
		byType[o.Type] = o
	}

	wc := byType["working_capital_loan"]
	assert.Equal(t, 250_000.0, wc.AmountMin)
	assert.Equal(t, 500_000.0, wc.AmountMax)
	assert.Equal(t, "None", wc.Collateral) // score > 60
	assert.Equal(t, 88.0, wc.ApprovalPct)  // 80 * 1.1 = 88

	term := byType["term_loan"]
	assert.Equal(t, "50% of loan amount", term.Collateral)
	assert.Equal(t, 80.0, term.ApprovalPct)

	od := byType["overdraft_facility"]
	assert.Equal(t, "None", od.Collateral) // score > 70
	assert.Equal(t, 84.0, od.ApprovalPct)  // 80 * 1.05
}

func TestLoanMatrixLowScoreCollateral(t *testing.T) {
	t.Parallel()

	offers := LoanMatrix(45, 1_000_000)
	byType := make(map[string]LoanOffer, len(offers))
	for _, o := range offers {
		byType[o.Type] = o
	}

	assert.Equal(t, "50% of loan amount", byType["working_capital_loan"].Collateral)
	assert.Equal(t, "100% of loan amount", byType["term_loan"].Collateral)
	assert.Equal(t, "25% of facility", byType["overdraft_facility"].Collateral)
}

func TestRiskFactors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       model.Metrics
		factors []string
	}{
		{
			name: "healthy services business",
			m:    model.Metrics{ProfitMarginPct: 25, WorkingCapital: 100000},
			factors: []string{
				"Industry Cyclicality (Services)",
			},
		},
		{
			name: "thin margin with cash crunch",
			m:    model.Metrics{ProfitMarginPct: 3, WorkingCapital: -50000},
			factors: []string{
				"Low Profitability",
				"Negative Working Capital",
				"Industry Cyclicality (Services)",
			},
		},
		{
			name: "below average margin",
			m:    model.Metrics{ProfitMarginPct: 7},
			factors: []string{
				"Below Average Profitability",
				"Industry Cyclicality (Services)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RiskFactors(tt.m, model.IndustryServices)
			require.Len(t, got, len(tt.factors))
			for i, f := range tt.factors {
				assert.Equal(t, f, got[i].Factor)
			}
		})
	}
}

func TestStrengthsAndConcerns(t *testing.T) {
	t.Parallel()

	strong := model.Metrics{
		Revenue:         6_000_000,
		ProfitMarginPct: 25,
		ExpenseRatioPct: 55,
		WorkingCapital:  100_000,
	}
	assert.Len(t, Strengths(strong), 4)
	assert.Empty(t, Concerns(strong))

	weak := model.Metrics{
		Revenue:         500_000,
		ProfitMarginPct: 5,
		ExpenseRatioPct: 95,
		WorkingCapital:  -10_000,
	}
	assert.Empty(t, Strengths(weak))
	assert.Len(t, Concerns(weak), 3)
}

func TestAssess(t *testing.T) {
	t.Parallel()

	m := model.Metrics{
		Revenue:         330_000,
		ProfitMarginPct: 34.24,
		ExpenseRatioPct: 65.76,
		GrowthPct:       20,
	}

	report := Assess(m, 55, model.IndustryServices, m.Revenue)

	assert.Equal(t, 55.0, report.OverallScore)
	assert.Equal(t, "BBB", report.Rating.Rating)
	assert.Equal(t, "Medium", report.DefaultRisk.Level) // 100 - 66 = 34
	assert.Len(t, report.LoanEligibility, 5)
	assert.NotEmpty(t, report.Strengths) // strong margin
	assert.Empty(t, report.Concerns)
}
