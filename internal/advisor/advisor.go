// Package advisor produces plain-language guidance from computed
// metrics. The rule-based advice always works offline; a Narrator can
// optionally rewrite it into a fuller narrative via the Anthropic API.
package advisor

import (
	"strings"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Advice rule thresholds.
const (
	lowMarginBelow    = 10.0
	strongMarginAbove = 25.0
	highRatioAbove    = 70.0
	lowRevenueBelow   = 10_000.0
)

// Advice returns rule-based guidance lines for the given metrics.
// At least two lines are always returned.
func Advice(m model.Metrics) []string {
	var advice []string

	if m.ProfitMarginPct < lowMarginBelow {
		advice = append(advice, "Low profit margin. Reduce costs or increase pricing.")
	} else if m.ProfitMarginPct > strongMarginAbove {
		advice = append(advice, "Strong profit margin. Business is healthy.")
	}

	if m.ExpenseRatioPct > highRatioAbove {
		advice = append(advice, "Expenses too high. Optimize operational spending.")
	}

	if m.Revenue < lowRevenueBelow {
		advice = append(advice, "Revenue is low. Focus on customer growth and sales.")
	} else {
		advice = append(advice, "Revenue trend looks stable.")
	}

	advice = append(advice, "Maintain working capital and monitor cash flow regularly.")
	return advice
}

// AdviceText joins the advice lines into a single paragraph-separated
// string for rendering.
func AdviceText(m model.Metrics) string {
	return strings.Join(Advice(m), "\n\n")
}
