package report

import (
	"fmt"
	"strconv"

	"github.com/udyamlabs/finhealth-cli/internal/i18n"
)

// Line is one row of the flattened assessment summary.
type Line struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Summary flattens the headline figures into ordered label/value pairs
// for rendering. Rupee amounts are formatted for lang.
func (a *Assessment) Summary(lang string) []Line {
	return []Line{
		{Label: "Industry", Value: string(a.Industry)},
		{Label: "Health Score", Value: strconv.Itoa(a.HealthScore)},
		{Label: "Revenue", Value: i18n.FormatINR(lang, a.Metrics.Revenue)},
		{Label: "Expense", Value: i18n.FormatINR(lang, a.Metrics.Expense)},
		{Label: "Profit", Value: i18n.FormatINR(lang, a.Metrics.Profit)},
		{Label: "Profit Margin %", Value: fmt.Sprintf("%.2f", a.Metrics.ProfitMarginPct)},
		{Label: "Expense Ratio %", Value: fmt.Sprintf("%.2f", a.Metrics.ExpenseRatioPct)},
		{Label: "Growth %", Value: fmt.Sprintf("%.2f", a.Metrics.GrowthPct)},
		{Label: "Credit Rating", Value: a.Credit.Rating.Rating},
		{Label: "Tax Status", Value: a.Tax.Status},
	}
}
