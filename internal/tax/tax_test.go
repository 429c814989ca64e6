package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestSlabBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		revenue float64
		want    string
	}{
		{5_000_001, "30%"},
		{5_000_000, "25%"}, // boundary is strict greater-than
		{2_500_001, "25%"},
		{2_500_000, "20%"},
		{1_000_001, "20%"},
		{1_000_000, "No tax (Below threshold)"},
		{0, "No tax (Below threshold)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slab(tt.revenue), "revenue=%v", tt.revenue)
	}
}

func TestCheckGSTEligibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		revenue  float64
		industry model.Industry
		want     bool
	}{
		{"above general threshold", 4_000_001, model.IndustryRetail, true},
		{"at general threshold", 4_000_000, model.IndustryRetail, false},
		{"services above sector threshold", 2_000_001, model.IndustryServices, true},
		{"retail above sector threshold only", 2_000_001, model.IndustryRetail, false},
		{"manufacturing below sector threshold", 2_000_000, model.IndustryManufacturing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := Check(model.Metrics{}, tt.revenue, tt.revenue*0.7, tt.industry)
			assert.Equal(t, tt.want, report.GSTEligible)
		})
	}
}

func TestCheckExpensesExceedRevenue(t *testing.T) {
	t.Parallel()

	report := Check(model.Metrics{}, 100_000, 120_000, model.IndustryServices)

	assert.Equal(t, StatusWarning, report.Status)
	assert.Equal(t, 65, report.ComplianceScore) // -20 overspend, -15 negative margin
	require.NotEmpty(t, report.Issues)
	assert.Contains(t, report.Issues[0], "expenses exceed revenue")
	assert.Contains(t, report.Recommendations[0], "loss carryforward")
}

func TestCheckHighRevenueRecommendations(t *testing.T) {
	t.Parallel()

	report := Check(model.Metrics{}, 12_000_000, 8_000_000, model.IndustryManufacturing)

	assert.Equal(t, StatusCompliant, report.Status)
	assert.Equal(t, 100, report.ComplianceScore)

	var tds, audit bool
	for _, r := range report.Recommendations {
		switch {
		case r == "ensure TDS deduction and remittance on due date":
			tds = true
		case r == "statutory audit required as per Companies Act":
			audit = true
		}
	}
	assert.True(t, tds)
	assert.True(t, audit)
}

func TestCheckMSME(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		revenue  float64
		industry model.Industry
		want     bool
	}{
		{"manufacturing under cap", 5_000_000, model.IndustryManufacturing, true},
		{"manufacturing over cap", 5_000_001, model.IndustryManufacturing, false},
		{"services under cap", 2_500_000, model.IndustryServices, true},
		{"services over cap", 2_500_001, model.IndustryServices, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := Check(model.Metrics{}, tt.revenue, tt.revenue*0.5, tt.industry)
			var found bool
			for _, r := range report.Recommendations {
				if r == "you qualify for MSME benefits - register on MSME portal" {
					found = true
				}
			}
			assert.Equal(t, tt.want, found)
		})
	}
}

func TestCheckStandingRecommendations(t *testing.T) {
	t.Parallel()

	report := Check(model.Metrics{}, 1_000_000, 700_000, model.IndustryRetail)
	n := len(report.Recommendations)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, "maintain proper books of accounts for minimum 6 years", report.Recommendations[n-2])
	assert.Equal(t, "file GSTR returns on time (monthly/quarterly)", report.Recommendations[n-1])
}

func TestDeductions(t *testing.T) {
	t.Parallel()

	report := Deductions(model.IndustryServices, 1_000_000, 600_000)

	require.Len(t, report.Deductions, 9)
	assert.Equal(t, "operating_expenses", report.Deductions[0].Category)
	assert.Equal(t, 600_000.0, report.Deductions[0].Amount)
	assert.Equal(t, "depreciation", report.Deductions[1].Category)
	assert.Equal(t, 50_000.0, report.Deductions[1].Amount)

	// 600000 + 50000 + 20000 + 10000 + 15000 + 20000 + 10000 + 500 + 0
	assert.Equal(t, 725_500.0, report.TotalDeductions)
	assert.Equal(t, 274_500.0, report.EstimatedTaxableIncome)
}

func TestDeductionsIndustryExtras(t *testing.T) {
	t.Parallel()

	tests := []struct {
		industry model.Industry
		extra    []string
	}{
		{model.IndustryManufacturing, []string{"raw_materials", "power_fuel"}},
		{model.IndustryRetail, []string{"rent", "inventory_write_off"}},
		{model.IndustryAgriculture, []string{"farm_inputs", "agricultural_subsidies"}},
		{model.IndustryEcommerce, []string{"platform_commissions", "logistics", "digital_marketing"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.industry), func(t *testing.T) {
			t.Parallel()
			report := Deductions(tt.industry, 1_000_000, 600_000)
			require.Len(t, report.Deductions, 9+len(tt.extra))
			for i, cat := range tt.extra {
				assert.Equal(t, cat, report.Deductions[9+i].Category)
			}
		})
	}
}

func TestDeductionsTaxableFloorsAtZero(t *testing.T) {
	t.Parallel()

	report := Deductions(model.IndustryServices, 100_000, 200_000)
	assert.Equal(t, 0.0, report.EstimatedTaxableIncome)
}
