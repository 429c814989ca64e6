package products

import (
	"fmt"
	"math"
	"sort"
)

// Affordability summarizes the repayment burden of a loan.
type Affordability struct {
	MonthlyEMI         float64 `json:"monthly_emi"`
	TotalInterest      float64 `json:"total_interest"`
	TotalAmountPayable float64 `json:"total_amount_payable"`
	InterestPct        float64 `json:"interest_percentage"`
	TenorMonths        int     `json:"tenor_months"`
	TenorYears         float64 `json:"tenor_years"`
}

// ComputeAffordability calculates the EMI for a loan using the standard
// amortization formula. rate is annual percent; a zero rate amortizes
// the principal evenly.
func ComputeAffordability(amount, rate float64, tenorMonths int) Affordability {
	monthlyRate := rate / 100 / 12

	var emi float64
	if monthlyRate == 0 {
		emi = amount / float64(tenorMonths)
	} else {
		factor := math.Pow(1+monthlyRate, float64(tenorMonths))
		emi = amount * monthlyRate * factor / (factor - 1)
	}

	totalInterest := emi*float64(tenorMonths) - amount
	a := Affordability{
		MonthlyEMI:         emi,
		TotalInterest:      totalInterest,
		TotalAmountPayable: amount + totalInterest,
		TenorMonths:        tenorMonths,
		TenorYears:         float64(tenorMonths) / 12,
	}
	if amount > 0 {
		a.InterestPct = totalInterest / amount * 100
	}
	return a
}

// Offer is a lender's loan proposal.
type Offer struct {
	Lender      string  `json:"lender"`
	Amount      float64 `json:"loan_amount"`
	RatePct     float64 `json:"interest_rate"`
	TenorMonths int     `json:"tenor_months"`
}

// OfferComparison is one offer with its computed repayment cost.
type OfferComparison struct {
	Lender        string  `json:"lender"`
	Amount        float64 `json:"loan_amount"`
	RatePct       float64 `json:"interest_rate"`
	MonthlyEMI    float64 `json:"monthly_emi"`
	TotalInterest float64 `json:"total_interest"`
	TotalCost     float64 `json:"total_cost"`
}

// OfferEvaluation ranks offers by total repayment cost, cheapest first.
type OfferEvaluation struct {
	Comparison     []OfferComparison `json:"comparison"`
	Best           *OfferComparison  `json:"best_offer,omitempty"`
	Recommendation string            `json:"recommendation"`
}

// CompareOffers evaluates loan offers and recommends the one with the
// lowest total cost. Offers with no tenor default to 12 months.
func CompareOffers(offers []Offer) OfferEvaluation {
	comparison := make([]OfferComparison, 0, len(offers))
	for _, offer := range offers {
		tenor := offer.TenorMonths
		if tenor == 0 {
			tenor = 12
		}
		afford := ComputeAffordability(offer.Amount, offer.RatePct, tenor)
		comparison = append(comparison, OfferComparison{
			Lender:        offer.Lender,
			Amount:        offer.Amount,
			RatePct:       offer.RatePct,
			MonthlyEMI:    afford.MonthlyEMI,
			TotalInterest: afford.TotalInterest,
			TotalCost:     afford.TotalAmountPayable,
		})
	}

	sort.SliceStable(comparison, func(i, j int) bool {
		return comparison[i].TotalCost < comparison[j].TotalCost
	})

	eval := OfferEvaluation{Comparison: comparison, Recommendation: "No offers available"}
	if len(comparison) > 0 {
		eval.Best = &comparison[0]
		eval.Recommendation = fmt.Sprintf("Best offer from %s", comparison[0].Lender)
	}
	return eval
}
