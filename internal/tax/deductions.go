package tax

import "github.com/udyamlabs/finhealth-cli/internal/model"

// Deduction is one claimable category with its estimated amount.
type Deduction struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DeductionReport estimates claimable deductions and taxable income.
// Category order is fixed for reproducible rendering.
type DeductionReport struct {
	Deductions             []Deduction `json:"deductions"`
	TotalDeductions        float64     `json:"total_deductions"`
	EstimatedTaxableIncome float64     `json:"estimated_taxable_income"`
}

const flatBankCharges = 500

// Deductions estimates available deductions as fixed fractions of revenue
// or expenses, with industry-specific extra categories.
func Deductions(industry model.Industry, revenue, expenses float64) DeductionReport {
	items := []Deduction{
		{"operating_expenses", expenses},
		{"depreciation", revenue * 0.05},
		{"professional_fees", revenue * 0.02},
		{"travel_expenses", revenue * 0.01},
		{"utilities", revenue * 0.015},
		{"business_promotion", revenue * 0.02},
		{"insurance_premiums", revenue * 0.01},
		{"bank_charges", flatBankCharges},
		{"interest_on_loans", 0},
	}

	switch industry {
	case model.IndustryManufacturing:
		items = append(items,
			Deduction{"raw_materials", expenses * 0.6},
			Deduction{"power_fuel", expenses * 0.1},
		)
	case model.IndustryRetail:
		items = append(items,
			Deduction{"rent", expenses * 0.15},
			Deduction{"inventory_write_off", expenses * 0.05},
		)
	case model.IndustryAgriculture:
		items = append(items,
			Deduction{"farm_inputs", expenses * 0.4},
			Deduction{"agricultural_subsidies", 0},
		)
	case model.IndustryEcommerce:
		items = append(items,
			Deduction{"platform_commissions", expenses * 0.1},
			Deduction{"logistics", expenses * 0.15},
			Deduction{"digital_marketing", expenses * 0.1},
		)
	}

	var total float64
	for _, d := range items {
		total += d.Amount
	}

	taxable := revenue - total
	if taxable < 0 {
		taxable = 0
	}

	return DeductionReport{
		Deductions:             items,
		TotalDeductions:        total,
		EstimatedTaxableIncome: taxable,
	}
}
