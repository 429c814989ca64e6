package costopt

import (
	"math"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// StrategyGroup is a named list of cost-reduction actions.
type StrategyGroup struct {
	Category string   `json:"category"`
	Actions  []string `json:"actions"`
}

// industryStrategies holds the per-industry bonus list.
var industryStrategies = map[model.Industry][]string{
	model.IndustryManufacturing: {"Lean production", "Reduce scrap"},
	model.IndustryRetail:        {"Optimize inventory turnover"},
	model.IndustryEcommerce:     {"Reduce returns"},
	model.IndustryServices:      {"Increase billable utilization"},
}

// ReductionStrategies returns the fixed per-category strategy lists plus
// an industry-specific group when one exists.
func ReductionStrategies(industry model.Industry) []StrategyGroup {
	groups := []StrategyGroup{
		{
			Category: "Personnel & Salaries",
			Actions: []string{
				"Automate repetitive tasks",
				"Outsource non-core work",
				"Use freelancers",
				"Performance incentives",
			},
		},
		{
			Category: "Raw Materials/Inventory",
			Actions: []string{
				"Bulk purchase discounts",
				"Just-in-time inventory",
				"Remove slow-moving stock",
			},
		},
		{
			Category: "Marketing & Advertising",
			Actions: []string{
				"Focus on digital marketing",
				"Reduce traditional ads",
				"Track ROI strictly",
			},
		},
	}

	if actions, ok := industryStrategies[industry]; ok {
		groups = append(groups, StrategyGroup{Category: "Industry Specific", Actions: actions})
	}
	return groups
}

// industryMargins holds typical profit margins used for savings impact.
var industryMargins = map[model.Industry]float64{
	model.IndustryRetail:        12,
	model.IndustryManufacturing: 15,
	model.IndustryServices:      25,
	model.IndustryEcommerce:     8,
	model.IndustryAgriculture:   18,
	model.IndustryLogistics:     10,
}

const defaultMargin = 15

// Impact quantifies how realized savings would move the profit margin.
type Impact struct {
	SavingsAmount     float64 `json:"savings_amount"`
	MarginImprovement float64 `json:"margin_improvement_pct"`
	NewProfitMargin   float64 `json:"new_profit_margin_pct"`
	ROIPct            float64 `json:"roi_pct"`
}

// SavingsImpact projects the margin effect of a savings amount against the
// industry's typical margin.
func SavingsImpact(savings, revenue float64, industry model.Industry) Impact {
	margin, ok := industryMargins[industry]
	if !ok {
		margin = defaultMargin
	}

	profitBefore := revenue * margin / 100
	profitAfter := profitBefore + savings

	var newMargin, roi float64
	if revenue > 0 {
		newMargin = profitAfter / revenue * 100
		roi = savings / revenue * 100
	}

	return Impact{
		SavingsAmount:     savings,
		MarginImprovement: round2(newMargin - margin),
		NewProfitMargin:   round2(newMargin),
		ROIPct:            round2(roi),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
