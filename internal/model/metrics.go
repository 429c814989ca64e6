package model

// Metrics is the fixed-shape record derived once per dataset. It is
// immutable after computation; every advisory module reads it as a common
// input. Optional inputs are resolved here, at construction time, so
// downstream readers never fall back per read site.
//
// ProfitMarginPct and ExpenseRatioPct are computed independently and are
// not constrained to sum to 100.
type Metrics struct {
	Revenue         float64 `json:"revenue"`
	Expense         float64 `json:"expense"`
	Profit          float64 `json:"profit"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
	ExpenseRatioPct float64 `json:"expense_ratio_pct"`
	GrowthPct       float64 `json:"growth_pct"`

	// AvgLoan is the mean of the Loan column; 0 with HasLoan=false when
	// the column is absent.
	AvgLoan float64 `json:"avg_loan"`
	HasLoan bool    `json:"has_loan"`

	// WorkingCapital is sum(Receivable) - sum(Payable); 0 with
	// HasWorkingCapital=false when both columns are absent.
	WorkingCapital    float64 `json:"working_capital"`
	HasWorkingCapital bool    `json:"has_working_capital"`
}
