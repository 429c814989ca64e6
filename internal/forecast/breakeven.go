package forecast

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// BreakevenPoint is the revenue at which contribution covers fixed costs.
type BreakevenPoint struct {
	Revenue        float64 `json:"breakeven_revenue"`
	Interpretation string  `json:"interpretation"`
}

// Breakeven computes breakeven revenue from fixed costs and the variable
// cost ratio (fraction of revenue, 0..1). A ratio at or above 1 leaves no
// contribution margin and is an error.
func Breakeven(fixedCosts, variableCostRatio float64) (BreakevenPoint, error) {
	contribution := 1 - variableCostRatio
	if contribution <= 0 {
		return BreakevenPoint{}, eris.New("forecast: variable costs meet or exceed revenue, breakeven unreachable")
	}

	revenue := fixedCosts / contribution
	return BreakevenPoint{
		Revenue:        revenue,
		Interpretation: fmt.Sprintf("You need to generate ₹%.0f revenue to break even", revenue),
	}, nil
}
