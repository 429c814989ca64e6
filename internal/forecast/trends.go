package forecast

import (
	"fmt"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// trend direction bands, percent endpoint growth.
const (
	increasingAbove = 5.0
	stableAbove     = -5.0
)

// Trend describes the direction of a single column over the dataset.
type Trend struct {
	GrowthRatePct float64 `json:"growth_rate_pct"`
	Direction     string  `json:"direction"`
	Momentum      string  `json:"momentum"`
}

// TrendReport holds per-column trends plus human-readable observations.
type TrendReport struct {
	Revenue  *Trend   `json:"revenue_trend,omitempty"`
	Expense  *Trend   `json:"expense_trend,omitempty"`
	Analysis []string `json:"analysis"`
}

// Trends analyzes revenue and expense direction over the record set.
// Columns with fewer than two values are skipped.
func Trends(rs *model.RecordSet) TrendReport {
	report := TrendReport{Analysis: []string{}}

	if t := columnTrend(rs, model.ColRevenue); t != nil {
		report.Revenue = t
		if t.GrowthRatePct > 0 {
			report.Analysis = append(report.Analysis,
				fmt.Sprintf("Revenue growing at %.1f%% - positive momentum", t.GrowthRatePct))
		} else {
			report.Analysis = append(report.Analysis,
				fmt.Sprintf("Revenue declining by %.1f%% - needs attention", -t.GrowthRatePct))
		}
	}

	if t := columnTrend(rs, model.ColExpense); t != nil {
		report.Expense = t
		if t.GrowthRatePct > 0 {
			report.Analysis = append(report.Analysis,
				fmt.Sprintf("Expenses growing at %.1f%% - cost control needed", t.GrowthRatePct))
		} else {
			report.Analysis = append(report.Analysis,
				fmt.Sprintf("Expenses declining by %.1f%% - good cost management", -t.GrowthRatePct))
		}
	}

	return report
}

func columnTrend(rs *model.RecordSet, col model.Column) *Trend {
	values := rs.Values(col)
	if len(values) < 2 {
		return nil
	}

	var growth float64
	if first := values[0]; first != 0 {
		growth = (values[len(values)-1] - first) / first * 100
	}

	direction := "Decreasing"
	switch {
	case growth > increasingAbove:
		direction = "Increasing"
	case growth > stableAbove:
		direction = "Stable"
	}

	return &Trend{
		GrowthRatePct: growth,
		Direction:     direction,
		Momentum:      momentum(values),
	}
}

// momentum compares the average of the last three values against the
// average of everything before them.
func momentum(values []float64) string {
	n := len(values)
	if n < 2 {
		return "Insufficient data"
	}

	recent := values[n-1]
	if n >= 3 {
		recent = mean(values[n-3:])
	}
	earlier := values[0]
	if n > 3 {
		earlier = mean(values[:n-3])
	}

	if earlier == 0 {
		return "Cannot calculate"
	}

	m := (recent - earlier) / earlier * 100
	switch {
	case m > 10:
		return "Strong Positive"
	case m > 0:
		return "Positive"
	case m > -5:
		return "Stable"
	default:
		return "Negative"
	}
}
