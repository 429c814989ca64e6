// Package scorer maps a metrics record to the composite 0-100 health score.
// The score is an explicit weighted rubric, not a statistical model: the
// clamps and the liquidity bonus are normative.
package scorer

import "github.com/udyamlabs/finhealth-cli/internal/model"

// Rubric constants.
const (
	marginCap     = 30 // profit margin contributes up to 30 points
	ratioBase     = 30 // expense ratio subtracts from a 30-point base
	growthCap     = 20 // growth contributes up to 20 points
	liquidityHigh = 20 // positive working capital
	liquidityLow  = 5  // zero or negative working capital
	scoreCap      = 100
)

// Health computes the composite health score:
//
//	clamp(margin, 0, 30) + max(0, 30 - ratio) + clamp(growth, 0, 20)
//	+ (20 if working capital > 0 else 5), clamped to 100.
//
// Deterministic and pure; recomputed on demand, never persisted.
func Health(m model.Metrics) int {
	total := Components(m)

	var score float64
	for _, v := range total {
		score += v
	}
	if score > scoreCap {
		score = scoreCap
	}
	return int(score)
}

// Components returns the rubric's individual contributions, keyed for
// dashboard display. The sum (pre-cap) equals the health score.
func Components(m model.Metrics) map[string]float64 {
	return map[string]float64{
		"profitability":   clamp(m.ProfitMarginPct, 0, marginCap),
		"cost_efficiency": max0(ratioBase - m.ExpenseRatioPct),
		"growth":          clamp(m.GrowthPct, 0, growthCap),
		"liquidity":       liquidity(m),
	}
}

func liquidity(m model.Metrics) float64 {
	if m.WorkingCapital > 0 {
		return liquidityHigh
	}
	return liquidityLow
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
