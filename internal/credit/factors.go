package credit

import (
	"fmt"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// RiskFactor is one identified credit risk with severity and mitigation.
type RiskFactor struct {
	Factor     string `json:"factor"`
	Severity   string `json:"severity"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

// industryCyclicality maps each industry to its business-cycle severity.
var industryCyclicality = map[model.Industry]string{
	model.IndustryAgriculture:   "High",
	model.IndustryEcommerce:     "Medium",
	model.IndustryManufacturing: "Medium",
	model.IndustryRetail:        "High",
	model.IndustryServices:      "Low",
	model.IndustryLogistics:     "Medium",
}

// RiskFactors identifies profitability, liquidity and business-cycle risks.
// Checks append independently, in listed order.
func RiskFactors(m model.Metrics, industry model.Industry) []RiskFactor {
	var factors []RiskFactor

	if m.ProfitMarginPct < 5 {
		factors = append(factors, RiskFactor{
			Factor:     "Low Profitability",
			Severity:   "High",
			Impact:     "Reduces debt servicing capacity",
			Mitigation: "Focus on cost control and revenue growth",
		})
	} else if m.ProfitMarginPct < 10 {
		factors = append(factors, RiskFactor{
			Factor:     "Below Average Profitability",
			Severity:   "Medium",
			Impact:     "Limited buffer for loan repayment",
			Mitigation: "Improve operational efficiency",
		})
	}

	if m.WorkingCapital < 0 {
		factors = append(factors, RiskFactor{
			Factor:     "Negative Working Capital",
			Severity:   "High",
			Impact:     "Potential liquidity crisis",
			Mitigation: "Improve collections and payment terms",
		})
	}

	if severity, ok := industryCyclicality[industry]; ok {
		factors = append(factors, RiskFactor{
			Factor:     fmt.Sprintf("Industry Cyclicality (%s)", industry),
			Severity:   severity,
			Impact:     "Seasonal or economic cycle impacts",
			Mitigation: "Diversify revenue streams, maintain reserves",
		})
	}

	return factors
}

// Strength and concern thresholds.
const (
	strengthRevenue = 5_000_000
	strengthMargin  = 20
	strengthRatio   = 60
	concernMargin   = 10
	concernRatio    = 80
)

// Strengths lists financial strengths from independent threshold checks.
func Strengths(m model.Metrics) []string {
	var out []string
	if m.Revenue > strengthRevenue {
		out = append(out, "Large revenue base indicates scale and market presence")
	}
	if m.ProfitMarginPct > strengthMargin {
		out = append(out, "Strong profitability demonstrates operational efficiency")
	}
	if m.WorkingCapital > 0 {
		out = append(out, "Healthy working capital indicates good liquidity management")
	}
	if m.ExpenseRatioPct < strengthRatio {
		out = append(out, "Low expense ratio shows cost discipline")
	}
	return out
}

// Concerns lists areas of concern from independent threshold checks.
func Concerns(m model.Metrics) []string {
	var out []string
	if m.ProfitMarginPct < concernMargin {
		out = append(out, "Low profit margin limits debt servicing capacity")
	}
	if m.WorkingCapital < 0 {
		out = append(out, "Negative working capital poses liquidity risk")
	}
	if m.ExpenseRatioPct > concernRatio {
		out = append(out, "High expense ratio leaves little margin for error")
	}
	return out
}
