package workingcap

// Product describes a working-capital financing product. Amount bounds are
// numbers; currency rendering belongs to the formatting layer.
type Product struct {
	Name      string  `json:"name"`
	Purpose   string  `json:"purpose"`
	AmountMin float64 `json:"amount_min"`
	AmountMax float64 `json:"amount_max"`
	Tenor     string  `json:"tenor"`
	IdealFor  string  `json:"ideal_for"`
}

// SuggestProducts selects financing products by threshold membership on
// the analysis. A Trade Credit Line entry is always included.
func SuggestProducts(analysis Report, revenue float64) []Product {
	var products []Product

	if analysis.CashConversionCycle > 45 {
		products = append(products, Product{
			Name:      "Working Capital Loan",
			Purpose:   "Bridge cash gap between expenses and collections",
			AmountMin: revenue * 0.25,
			AmountMax: revenue * 0.50,
			Tenor:     "12-36 months",
			IdealFor:  "Businesses with high receivables days",
		})
	}

	if analysis.ReceivablesDays > 45 {
		products = append(products, Product{
			Name:      "Invoice Discounting / Bill Discounting",
			Purpose:   "Get immediate cash against outstanding invoices",
			AmountMin: revenue * 0.30,
			AmountMax: revenue * 0.70,
			Tenor:     "90-180 days",
			IdealFor:  "B2B businesses with long credit terms",
		})
	}

	if analysis.InventoryDays > 60 {
		products = append(products, Product{
			Name:      "Inventory Financing",
			Purpose:   "Optimize inventory holding and reduce carrying costs",
			AmountMin: revenue * 0.15,
			AmountMax: revenue * 0.40,
			Tenor:     "6-12 months",
			IdealFor:  "Retail and manufacturing businesses",
		})
	}

	products = append(products, Product{
		Name:      "Trade Credit Line",
		Purpose:   "Flexible revolving credit for operational needs",
		AmountMin: revenue * 0.20,
		AmountMax: revenue * 0.60,
		Tenor:     "12-24 months",
		IdealFor:  "All businesses needing flexible credit",
	})

	return products
}

// Improvement is one optimization lever with its target and expected effect.
type Improvement struct {
	Lever      string  `json:"lever"`
	TargetDays float64 `json:"target_days"`
	Impact     string  `json:"impact"`
	Effort     string  `json:"effort"`
}

// OptimizationImpact estimates achievable targets for each working-capital
// lever.
func OptimizationImpact(analysis Report) []Improvement {
	return []Improvement{
		{
			Lever:      "reduce_receivables_days",
			TargetDays: maxf(20, analysis.ReceivablesDays-15),
			Impact:     "Accelerates cash inflow",
			Effort:     "Medium",
		},
		{
			Lever:      "optimize_inventory",
			TargetDays: maxf(40, analysis.InventoryDays-20),
			Impact:     "Reduces carrying costs and frees up cash",
			Effort:     "High",
		},
		{
			Lever:      "extend_payables",
			TargetDays: analysis.PayablesDays + 15,
			Impact:     "Improves cash outflow timing",
			Effort:     "Low",
		},
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
