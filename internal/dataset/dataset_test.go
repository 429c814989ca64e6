package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		ok   bool
	}{
		{"2024-01-15", true},
		{"15/01/2024", true},
		{"2024-01", true},
		{"Jan 2024", true},
		{"January 2024", true},
		{"Jan", true},
		{"  2024-01-15  ", true},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		_, ok := ParseDate(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"1,00,000", 100000, true},
		{"₹5000", 5000, true},
		{"$250.50", 250.50, true},
		{"-42", -42, true},
		{"", 0, false},
		{"n/a", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "raw=%q", tt.raw)
		}
	}
}

func TestFromRowsFiltersColumns(t *testing.T) {
	t.Parallel()

	header := []string{"Date", "Revenue", "Expense", "Notes", "revenue"}
	rows := [][]string{
		{"2024-01-01", "100", "70", "january", "999"},
		{"", "", "", "", ""},
		{"2024-02-01", "200", "80", "february", "999"},
	}

	rs := FromRows(header, rows)
	require.Equal(t, 2, rs.Len())

	// Unrecognized and case-mismatched headers are dropped.
	assert.Equal(t, []model.Column{model.ColDate, model.ColRevenue, model.ColExpense}, rs.Columns)
	assert.Equal(t, []float64{100, 200}, rs.Values(model.ColRevenue))
	assert.True(t, rs.Rows[0].DateOK)
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "Date,Revenue,Expense\n2024-01-01,100,70\n2024-02-01,\"1,200\",80\n"
	rs, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, rs.Len())
	assert.Equal(t, []float64{100, 1200}, rs.Values(model.ColRevenue))
}

func TestReadCSVEmpty(t *testing.T) {
	t.Parallel()

	rs, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
}

func TestFromRowsInvalidCells(t *testing.T) {
	t.Parallel()

	rs := FromRows(
		[]string{"Date", "Revenue", "Expense"},
		[][]string{{"2024-01-01", "abc", "70"}},
	)

	require.Equal(t, 1, rs.Len())
	_, ok := rs.Rows[0].Field(model.ColRevenue)
	assert.False(t, ok)
	v, ok := rs.Rows[0].Field(model.ColExpense)
	require.True(t, ok)
	assert.InDelta(t, 70, v, 1e-9)
}
