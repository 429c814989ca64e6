package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/dataset"
	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func quarterDataset() *model.RecordSet {
	return dataset.FromRows(
		[]string{"Date", "Revenue", "Expense"},
		[][]string{
			{"2024-01-01", "100000", "70000"},
			{"2024-02-01", "110000", "72000"},
			{"2024-03-01", "120000", "75000"},
		},
	)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	a, err := Build(context.Background(), quarterDataset(), model.IndustryServices, Options{})
	require.NoError(t, err)

	assert.Equal(t, model.IndustryServices, a.Industry)
	assert.True(t, a.Validation.Valid)
	assert.Equal(t, 330000.0, a.Metrics.Revenue)
	assert.Equal(t, 217000.0, a.Metrics.Expense)
	assert.Equal(t, 55, a.HealthScore)
	assert.Equal(t, "BBB", a.Credit.Rating.Rating)
	assert.Equal(t, "No tax (Below threshold)", a.Tax.IncomeTaxSlab)

	// Panels are all populated.
	assert.Len(t, a.Components, 4)
	assert.NotEmpty(t, a.Deductions.Deductions)
	assert.NotEmpty(t, a.WCProducts)
	assert.NotEmpty(t, a.Cost.Categories)
	assert.Len(t, a.Credit.LoanEligibility, 5)
	require.NotNil(t, a.Trends.Revenue)
	assert.InDelta(t, 20, a.Trends.Revenue.GrowthRatePct, 1e-9)
	assert.Len(t, a.RevenueForecast.Forecast, 12)
	assert.Len(t, a.Scenarios.Base, 12)
	assert.NotEmpty(t, a.Products.Immediate)
	assert.NotEmpty(t, a.Advice)
	assert.Empty(t, a.Narrative) // no narrator configured
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	rs := quarterDataset()
	first, err := Build(context.Background(), rs, model.IndustryRetail, Options{})
	require.NoError(t, err)
	second, err := Build(context.Background(), rs, model.IndustryRetail, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rs := dataset.FromRows(
		[]string{"Date", "Revenue", "Expense"},
		[][]string{
			{"2024-02-01", "-110000", "72000"},
			{"2024-01-01", "100000", "70000"},
			{"2024-03-01", "120000", "75000"},
		},
	)

	_, err := Build(context.Background(), rs, model.IndustryServices, Options{})
	require.NoError(t, err)

	v, ok := rs.Rows[0].Field(model.ColRevenue)
	require.True(t, ok)
	assert.Equal(t, -110000.0, v)
	assert.Equal(t, "2024-02-01", rs.Rows[0].DateRaw)
}

func TestBuildFailsOnInvalidDataset(t *testing.T) {
	t.Parallel()

	_, err := Build(context.Background(), &model.RecordSet{}, model.IndustryServices, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestBuildForecastOptions(t *testing.T) {
	t.Parallel()

	a, err := Build(context.Background(), quarterDataset(), model.IndustryServices, Options{
		ForecastPeriods: 6,
		ForecastMethod:  "moving_average",
	})
	require.NoError(t, err)
	assert.Len(t, a.RevenueForecast.Forecast, 6)
	assert.Len(t, a.Scenarios.Optimistic, 6)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	a, err := Build(context.Background(), quarterDataset(), model.IndustryRetail, Options{})
	require.NoError(t, err)

	lines := a.Summary("en")
	require.Len(t, lines, 10)

	byLabel := make(map[string]string, len(lines))
	for _, l := range lines {
		byLabel[l.Label] = l.Value
	}
	assert.Equal(t, "Retail", byLabel["Industry"])
	assert.Equal(t, "55", byLabel["Health Score"])
	assert.Contains(t, byLabel["Revenue"], "₹")
	assert.Equal(t, "34.24", byLabel["Profit Margin %"])
	assert.Equal(t, "20.00", byLabel["Growth %"])
	assert.Equal(t, a.Credit.Rating.Rating, byLabel["Credit Rating"])
}
