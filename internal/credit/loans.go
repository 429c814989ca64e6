package credit

// LoanOffer is one row of the loan eligibility matrix. When the score
// misses the type's threshold, Eligible is false and ApprovalPct is zero.
type LoanOffer struct {
	Type        string  `json:"type"`
	Eligible    bool    `json:"eligible"`
	AmountMin   float64 `json:"amount_min"`
	AmountMax   float64 `json:"amount_max"`
	Tenor       string  `json:"tenor"`
	Collateral  string  `json:"required_collateral"`
	ApprovalPct float64 `json:"approval_probability_pct"`
}

// loanSpec defines one loan type's fixed parameters.
type loanSpec struct {
	name           string
	scoreThreshold float64
	amountMinFrac  float64
	amountMaxFrac  float64
	tenor          string
	collateral     func(score float64) string
	approval       func(score float64) float64
}

// loanSpecs lists the five loan types in display order.
var loanSpecs = []loanSpec{
	{
		name:           "working_capital_loan",
		scoreThreshold: 40,
		amountMinFrac:  0.25, amountMaxFrac: 0.50,
		tenor: "12-36 months",
		collateral: func(s float64) string {
			if s > 60 {
				return "None"
			}
			return "50% of loan amount"
		},
		approval: func(s float64) float64 { return clampf(s*1.1, 40, 95) },
	},
	{
		name:           "term_loan",
		scoreThreshold: 50,
		amountMinFrac:  0.50, amountMaxFrac: 1.0,
		tenor: "36-60 months",
		collateral: func(s float64) string {
			if s < 65 {
				return "100% of loan amount"
			}
			return "50% of loan amount"
		},
		approval: func(s float64) float64 { return clampf(s, 45, 90) },
	},
	{
		name:           "overdraft_facility",
		scoreThreshold: 50,
		amountMinFrac:  0.10, amountMaxFrac: 0.25,
		tenor: "12 months (renewable)",
		collateral: func(s float64) string {
			if s > 70 {
				return "None"
			}
			return "25% of facility"
		},
		approval: func(s float64) float64 { return clampf(s*1.05, 50, 95) },
	},
	{
		name:           "equipment_finance",
		scoreThreshold: 45,
		amountMinFrac:  0.20, amountMaxFrac: 0.60,
		tenor:      "24-60 months",
		collateral: func(float64) string { return "Equipment as mortgage" },
		approval:   func(s float64) float64 { return clampf(s*0.95, 40, 85) },
	},
	{
		name:           "invoice_discounting",
		scoreThreshold: 30,
		amountMinFrac:  0.20, amountMaxFrac: 0.70,
		tenor:      "90-180 days",
		collateral: func(float64) string { return "Invoices/Bills" },
		approval:   func(s float64) float64 { return clampf(s*0.9, 60, 90) },
	},
}

// LoanMatrix evaluates eligibility for each loan type. Amount ranges are
// fixed fractions of revenue; thresholds are strict greater-than checks.
func LoanMatrix(score, revenue float64) []LoanOffer {
	out := make([]LoanOffer, len(loanSpecs))
	for i, spec := range loanSpecs {
		offer := LoanOffer{
			Type:       spec.name,
			AmountMin:  revenue * spec.amountMinFrac,
			AmountMax:  revenue * spec.amountMaxFrac,
			Tenor:      spec.tenor,
			Collateral: spec.collateral(score),
		}
		if score > spec.scoreThreshold {
			offer.Eligible = true
			offer.ApprovalPct = spec.approval(score)
		}
		out[i] = offer
	}
	return out
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
