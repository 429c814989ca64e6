package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/dataset"
	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func table(rows [][]string) *model.RecordSet {
	return dataset.FromRows([]string{"Date", "Revenue", "Expense"}, rows)
}

func TestRunEmptyDataset(t *testing.T) {
	t.Parallel()

	report := Run(&model.RecordSet{})
	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "empty")
}

func TestRunMissingColumns(t *testing.T) {
	t.Parallel()

	rs := dataset.FromRows([]string{"Date", "Revenue"}, [][]string{
		{"2024-01-01", "100"},
		{"2024-02-01", "110"},
		{"2024-03-01", "120"},
	})
	report := Run(rs)
	assert.False(t, report.Valid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "Expense")
}

func TestRunQualityDeductions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      [][]string
		wantScore int
	}{
		{
			name: "clean dataset",
			rows: [][]string{
				{"2024-01-01", "100", "70"},
				{"2024-02-01", "110", "72"},
				{"2024-03-01", "120", "75"},
			},
			wantScore: 100,
		},
		{
			name: "non-numeric revenue",
			rows: [][]string{
				{"2024-01-01", "abc", "70"},
				{"2024-02-01", "110", "72"},
				{"2024-03-01", "120", "75"},
			},
			wantScore: 90,
		},
		{
			name: "negative expense",
			rows: [][]string{
				{"2024-01-01", "100", "-70"},
				{"2024-02-01", "110", "72"},
				{"2024-03-01", "120", "75"},
			},
			wantScore: 95,
		},
		{
			name: "bad dates",
			rows: [][]string{
				{"soon", "100", "70"},
				{"2024-02-01", "110", "72"},
				{"2024-03-01", "120", "75"},
			},
			wantScore: 95,
		},
		{
			name: "too few rows",
			rows: [][]string{
				{"2024-01-01", "100", "70"},
			},
			wantScore: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := Run(table(tt.rows))
			assert.True(t, report.Valid)
			assert.Equal(t, tt.wantScore, report.QualityScore)
		})
	}
}

func TestRunLossWarning(t *testing.T) {
	t.Parallel()

	report := Run(table([][]string{
		{"2024-01-01", "50", "70"},
		{"2024-02-01", "60", "72"},
		{"2024-03-01", "120", "75"},
	}))
	require.True(t, report.Valid)

	var found bool
	for _, w := range report.Warnings {
		if w == "business shows loss in 2 out of 3 months" {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", report.Warnings)
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	rs := table([][]string{
		{"2024-03-01", "120", "75"},
		{"2024-01-01", "-100", "70"},
		{"2024-01-01", "-100", "70"}, // exact duplicate
		{"2024-02-01", "", "72"},     // missing revenue, dropped
	})

	clean := Sanitize(rs)
	require.Equal(t, 2, clean.Len())

	// Sorted by date with negatives flipped.
	assert.Equal(t, []float64{100, 120}, clean.Values(model.ColRevenue))

	// Input untouched.
	assert.Equal(t, 4, rs.Len())
	v, _ := rs.Rows[1].Field(model.ColRevenue)
	assert.Equal(t, -100.0, v)
}

func TestSanitizeKeepsOrderWhenDateUnparsed(t *testing.T) {
	t.Parallel()

	clean := Sanitize(table([][]string{
		{"later", "120", "75"},
		{"2024-01-01", "100", "70"},
	}))
	assert.Equal(t, []float64{120, 100}, clean.Values(model.ColRevenue))
}

func TestOutliers(t *testing.T) {
	t.Parallel()

	rs := table([][]string{
		{"2024-01-01", "100", "70"},
		{"2024-02-01", "102", "70"},
		{"2024-03-01", "98", "70"},
		{"2024-04-01", "101", "70"},
		{"2024-05-01", "5000", "70"},
	})

	report := Outliers(rs)
	require.True(t, report.Detected)
	require.Len(t, report.Columns, 1)
	assert.Equal(t, model.ColRevenue, report.Columns[0].Column)
	assert.Equal(t, []int{4}, report.Columns[0].Rows)
	assert.Equal(t, []float64{5000}, report.Columns[0].Values)
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "Revenue")
}

func TestOutliersNoneDetected(t *testing.T) {
	t.Parallel()

	report := Outliers(table([][]string{
		{"2024-01-01", "100", "70"},
		{"2024-02-01", "110", "72"},
		{"2024-03-01", "120", "75"},
	}))
	assert.False(t, report.Detected)
	assert.Empty(t, report.Columns)
}

func TestQuality(t *testing.T) {
	t.Parallel()

	rs := table([][]string{
		{"2024-01-01", "100", "70"},
		{"2024-01-01", "100", "70"}, // duplicate
		{"2024-02-01", "", "72"},    // missing revenue
	})

	report := Quality(rs)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 3, report.TotalColumns)
	assert.Equal(t, 1, report.DuplicateRows)
	assert.Equal(t, 1, report.MissingValues[model.ColRevenue])
	assert.Equal(t, 0, report.MissingValues[model.ColExpense])
	assert.Equal(t, "2024-01-01 to 2024-02-01", report.DateRange)
	assert.Equal(t, 93, report.QualityScore) // -5 missing, -2 duplicate
}

func TestBusinessProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		biz      string
		industry string
		revenue  float64
		pan      string
		valid    bool
	}{
		{"valid without pan", "Sharma Traders", "Retail", 1_000_000, "", true},
		{"valid with pan", "Sharma Traders", "Retail", 1_000_000, "ABCDE1234F", true},
		{"short name", "S", "Retail", 1_000_000, "", false},
		{"unknown industry", "Sharma Traders", "Mining", 1_000_000, "", false},
		{"zero revenue", "Sharma Traders", "Retail", 0, "", false},
		{"bad pan", "Sharma Traders", "Retail", 1_000_000, "1234567890", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := BusinessProfile(tt.biz, tt.industry, tt.revenue, tt.pan)
			assert.Equal(t, tt.valid, report.Valid)
			if !tt.valid {
				assert.NotEmpty(t, report.Errors)
			}
		})
	}
}

func TestValidGSTIN(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidGSTIN("27ABCDE1234F1Z5"))
	assert.False(t, ValidGSTIN("XXABCDE1234F1Z5"))
	assert.False(t, ValidGSTIN("27ABCDE1234F"))
}
