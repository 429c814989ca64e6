// Package costopt analyzes cost structure against fixed industry
// benchmarks and surfaces reduction opportunities.
package costopt

import (
	"math"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// benchmarks maps industry to its expected expense ratio (percent of revenue).
var benchmarks = map[model.Industry]float64{
	model.IndustryRetail:        70,
	model.IndustryManufacturing: 75,
	model.IndustryServices:      65,
	model.IndustryEcommerce:     80,
	model.IndustryAgriculture:   60,
	model.IndustryLogistics:     75,
}

const defaultBenchmark = 70

// personnelRevenueCap flags personnel spend above this share of revenue.
const personnelRevenueCap = 0.30

// Opportunity is one cost-reduction opening. Reduction bounds are percent
// points; Savings is an absolute amount.
type Opportunity struct {
	Area             string  `json:"area"`
	ReductionPctLow  float64 `json:"reduction_pct_low"`
	ReductionPctHigh float64 `json:"reduction_pct_high"`
	Savings          float64 `json:"savings"`
	Action           string  `json:"action"`
}

// Report holds the cost-structure analysis.
type Report struct {
	CurrentExpenseRatio   float64       `json:"current_expense_ratio"` // percent, 2-decimal
	IndustryBenchmark     float64       `json:"industry_benchmark"`
	OptimizationPotential float64       `json:"optimization_potential"` // percent points above benchmark
	PotentialSavings      float64       `json:"potential_savings"`
	Categories            []Category    `json:"cost_categories"`
	Opportunities         []Opportunity `json:"optimization_opportunities"`
}

// Analyze compares the expense ratio to the industry benchmark and checks
// personnel spend.
func Analyze(rs *model.RecordSet, revenue, expenses float64, industry model.Industry) Report {
	var ratio float64
	if revenue > 0 {
		ratio = expenses / revenue * 100
	}

	benchmark, ok := benchmarks[industry]
	if !ok {
		benchmark = defaultBenchmark
	}

	report := Report{
		CurrentExpenseRatio:   math.Round(ratio*100) / 100,
		IndustryBenchmark:     benchmark,
		OptimizationPotential: math.Max(0, ratio-benchmark),
		PotentialSavings:      math.Max(0, (ratio-benchmark)/100*revenue),
		Categories:            Categorize(expenses),
	}

	if ratio > benchmark {
		surplus := ratio - benchmark
		report.Opportunities = append(report.Opportunities, Opportunity{
			Area:             "Overall Costs",
			ReductionPctLow:  surplus,
			ReductionPctHigh: surplus,
			Savings:          report.PotentialSavings,
			Action:           "Review all expense categories for optimization",
		})
	}

	// Salaries takes precedence over Personnel when both columns exist.
	var personnel float64
	if rs.HasColumn(model.ColSalaries) {
		personnel, _ = rs.Mean(model.ColSalaries)
	} else if rs.HasColumn(model.ColPersonnel) {
		personnel, _ = rs.Mean(model.ColPersonnel)
	}

	if personnel > revenue*personnelRevenueCap {
		report.Opportunities = append(report.Opportunities, Opportunity{
			Area:             "Personnel Costs",
			ReductionPctLow:  10,
			ReductionPctHigh: 15,
			Savings:          personnel * 0.15,
			Action:           "Review staffing levels, automation, outsourcing",
		})
	}

	return report
}

// Category is one synthetic expense bucket.
type Category struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Categorize splits total expenses into seven fixed percentage buckets.
// The split is synthetic and is applied regardless of the actual input
// columns; the percentages sum to 100.
func Categorize(totalExpenses float64) []Category {
	split := []struct {
		name string
		pct  float64
	}{
		{"Personnel & Salaries", 30},
		{"Raw Materials/Inventory", 25},
		{"Rent & Utilities", 10},
		{"Logistics & Transportation", 10},
		{"Marketing & Advertising", 8},
		{"Maintenance & Repairs", 7},
		{"Miscellaneous", 10},
	}

	out := make([]Category, len(split))
	for i, s := range split {
		out[i] = Category{
			Name:       s.name,
			Percentage: s.pct,
			Amount:     totalExpenses * s.pct / 100,
		}
	}
	return out
}
