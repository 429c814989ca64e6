package forecast

import "math"

// Scenario case multipliers. Optimistic assumes faster growth with
// tighter costs, pessimistic the reverse.
const (
	optimisticGrowthFactor   = 1.5
	optimisticExpenseFactor  = 0.9
	pessimisticGrowthFactor  = 0.5
	pessimisticExpenseFactor = 1.1
)

// Period is one projected month within a scenario.
type Period struct {
	Month     int     `json:"month"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// ScenarioSet projects base, optimistic and pessimistic cases.
type ScenarioSet struct {
	Base        []Period `json:"base_case"`
	Optimistic  []Period `json:"optimistic_case"`
	Pessimistic []Period `json:"pessimistic_case"`
}

// Scenarios compounds the current monthly revenue forward under three
// growth assumptions. growthPct and expenseRatioPct are percentages.
func Scenarios(revenue, growthPct, expenseRatioPct float64, periods int) ScenarioSet {
	set := ScenarioSet{
		Base:        make([]Period, 0, periods),
		Optimistic:  make([]Period, 0, periods),
		Pessimistic: make([]Period, 0, periods),
	}

	for i := 1; i <= periods; i++ {
		set.Base = append(set.Base, project(revenue, growthPct, expenseRatioPct, i))
		set.Optimistic = append(set.Optimistic,
			project(revenue, growthPct*optimisticGrowthFactor, expenseRatioPct*optimisticExpenseFactor, i))
		set.Pessimistic = append(set.Pessimistic,
			project(revenue, growthPct*pessimisticGrowthFactor, expenseRatioPct*pessimisticExpenseFactor, i))
	}
	return set
}

func project(revenue, growthPct, expenseRatioPct float64, month int) Period {
	projected := revenue * math.Pow(1+growthPct/100, float64(month))
	profit := projected * (1 - expenseRatioPct/100)
	p := Period{Month: month, Revenue: projected, Profit: profit}
	if projected > 0 {
		p.MarginPct = profit / projected * 100
	}
	return p
}
