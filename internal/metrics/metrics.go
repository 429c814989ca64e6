// Package metrics reduces a cleaned dataset to the fixed scalar record
// every advisory module consumes.
package metrics

import (
	"github.com/rotisserie/eris"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Sentinel error kinds. Callers match with eris.Is and surface an explicit
// message; these must never escape as a silent zeroed report.
var (
	// ErrEmptyDataset is returned when the record set has no rows.
	ErrEmptyDataset = eris.New("metrics: dataset has no rows")
	// ErrNoRevenue is returned when a ratio would divide by zero or
	// negative revenue.
	ErrNoRevenue = eris.New("metrics: revenue must be positive")
)

// Compute derives the metrics record from a dataset. It is pure and total
// over any non-empty set with positive revenue; otherwise it fails with a
// sentinel error rather than propagating a division by zero.
func Compute(rs *model.RecordSet) (model.Metrics, error) {
	var m model.Metrics

	if rs.Len() == 0 {
		return m, ErrEmptyDataset
	}

	m.Revenue = rs.Sum(model.ColRevenue)
	m.Expense = rs.Sum(model.ColExpense)
	if m.Revenue <= 0 {
		return m, eris.Wrap(ErrNoRevenue, "compute margins")
	}

	m.Profit = m.Revenue - m.Expense
	m.ProfitMarginPct = m.Profit / m.Revenue * 100
	m.ExpenseRatioPct = m.Expense / m.Revenue * 100

	growth, err := endpointGrowth(rs)
	if err != nil {
		return m, err
	}
	m.GrowthPct = growth

	if rs.HasColumn(model.ColLoan) {
		if avg, ok := rs.Mean(model.ColLoan); ok {
			m.AvgLoan = avg
			m.HasLoan = true
		}
	}

	if rs.HasColumn(model.ColReceivable) || rs.HasColumn(model.ColPayable) {
		m.WorkingCapital = rs.Sum(model.ColReceivable) - rs.Sum(model.ColPayable)
		m.HasWorkingCapital = true
	}

	return m, nil
}

// endpointGrowth computes revenue change from the first to the last row.
// Only the endpoints are used, not a regression, so boundary outliers
// move the result.
func endpointGrowth(rs *model.RecordSet) (float64, error) {
	first, ok := rs.Rows[0].Field(model.ColRevenue)
	if !ok || first == 0 {
		return 0, eris.Wrap(ErrNoRevenue, "first-period revenue")
	}
	last, ok := rs.Rows[len(rs.Rows)-1].Field(model.ColRevenue)
	if !ok {
		return 0, eris.Wrap(ErrNoRevenue, "last-period revenue")
	}
	return (last - first) / first * 100, nil
}
