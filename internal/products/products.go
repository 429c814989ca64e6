// Package products maps a business profile to suitable financial
// products from Indian banks and NBFCs. Recommendations are tiered by
// creditworthiness score and sized against monthly revenue.
package products

import (
	"fmt"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Score tiers and revenue gates for the recommendation tree.
const (
	premiumScoreAbove   = 75
	standardScoreAbove  = 60
	growthRevenueAbove  = 5_000_000
	investScoreAbove    = 50
	investRevenueAbove  = 2_500_000
	wcShortfallFraction = 0.10
	mdrSavingsFraction  = 0.02
)

// LoanProduct is a credit product with an expected sanction limit.
type LoanProduct struct {
	Product       string   `json:"product"`
	Provider      string   `json:"provider"`
	Features      []string `json:"features"`
	Eligibility   string   `json:"eligibility,omitempty"`
	UseCase       string   `json:"use_case,omitempty"`
	ExpectedLimit float64  `json:"expected_limit"`
}

// InvestmentProduct parks or optimizes surplus funds.
type InvestmentProduct struct {
	Product  string   `json:"product"`
	Provider string   `json:"provider"`
	Features []string `json:"features"`
	Benefit  string   `json:"benefit"`
}

// InsuranceProduct covers a business risk with an annual premium band.
type InsuranceProduct struct {
	Product    string  `json:"product"`
	Provider   string  `json:"provider"`
	Coverage   string  `json:"coverage"`
	PremiumMin float64 `json:"premium_min"`
	PremiumMax float64 `json:"premium_max"`
}

// AdvisoryService is a professional service recommendation.
type AdvisoryService struct {
	Service  string   `json:"service"`
	Provider string   `json:"provider"`
	Benefits []string `json:"benefits"`
}

// Set groups recommendations by purpose.
type Set struct {
	Immediate  []LoanProduct       `json:"immediate_products"`
	Growth     []LoanProduct       `json:"growth_products"`
	Investment []InvestmentProduct `json:"investment_products"`
	Insurance  []InsuranceProduct  `json:"insurance_products"`
	Advisory   []AdvisoryService   `json:"advisory_products"`
}

// Recommend builds the product set for a business. score is the
// creditworthiness score, revenue the total revenue over the dataset,
// workingCapital the receivables-payables gap. The decision tree reads
// only these three inputs; industry-specific catalogues live in
// ByIndustry.
func Recommend(score, revenue, workingCapital float64) Set {
	set := Set{}

	switch {
	case score > premiumScoreAbove:
		set.Immediate = append(set.Immediate,
			LoanProduct{
				Product:       "Premium Working Capital Loan",
				Provider:      "HDFC Bank / ICICI Bank / Axis Bank",
				Features:      []string{"Competitive rates (Current Market Rate - 1-2%)", "Quick approval", "Upto ₹1 Crore"},
				Eligibility:   "Score > 75, Revenue > ₹50L",
				ExpectedLimit: revenue * 0.50,
			},
			LoanProduct{
				Product:       "Business Term Loan",
				Provider:      "SBI / HDFC Bank / ICICI Bank",
				Features:      []string{"Fixed EMI", "Long tenor (36-60 months)", "Low interest rate"},
				Eligibility:   "Score > 75, Revenue > ₹50L",
				ExpectedLimit: revenue * 1.0,
			})
	case score > standardScoreAbove:
		set.Immediate = append(set.Immediate,
			LoanProduct{
				Product:       "Standard Working Capital Loan",
				Provider:      "Yes Bank / HDFC Bank / Axis Bank",
				Features:      []string{"Moderate rates", "Upto 12 months", "Quick disbursal"},
				Eligibility:   "Score > 60, Revenue > ₹30L",
				ExpectedLimit: revenue * 0.40,
			},
			LoanProduct{
				Product:       "Business Overdraft",
				Provider:      "SBI / HDFC Bank / ICICI Bank",
				Features:      []string{"Flexible", "No pre-payment charges", "Interest on daily balance"},
				Eligibility:   "Score > 60, Revenue > ₹25L",
				ExpectedLimit: revenue * 0.25,
			})
	default:
		set.Immediate = append(set.Immediate, LoanProduct{
			Product:       "Micro Business Loan",
			Provider:      "MUDRA / Fintech Companies",
			Features:      []string{"Quick approval", "Flexible repayment", "Lower eligibility"},
			Eligibility:   "Score > 40",
			ExpectedLimit: revenue * 0.25,
		})
	}

	if revenue > growthRevenueAbove {
		set.Growth = append(set.Growth,
			LoanProduct{
				Product:       "Asset Financing",
				Provider:      "HDFC Bank / Axis Bank / ICICI Bank",
				Features:      []string{"For machinery/equipment", "Long tenor", "Competitive rates"},
				UseCase:       "Capex investments",
				ExpectedLimit: revenue * 0.60,
			},
			LoanProduct{
				Product:       "Venture Debt",
				Provider:      "Venture Debt Funds",
				Features:      []string{"For scaling businesses", "Equity-like returns", "Growth focus"},
				UseCase:       "Rapid expansion",
				ExpectedLimit: revenue * 0.50,
			})
	}

	if workingCapital < 0 || workingCapital < revenue*wcShortfallFraction {
		set.Immediate = append(set.Immediate, LoanProduct{
			Product:       "Invoice Discounting / Bill Discounting",
			Provider:      "TradeFin Platforms / NBFC",
			Features:      []string{"Convert receivables to cash", "Fast approval", "Flexible tenure"},
			UseCase:       "Improve cash flow",
			ExpectedLimit: revenue * 0.50,
		})
	}

	if score > investScoreAbove && revenue > investRevenueAbove {
		set.Investment = append(set.Investment,
			InvestmentProduct{
				Product:  "Sweep Account",
				Provider: "HDFC Bank / ICICI Bank / Axis Bank",
				Features: []string{"Earn interest on surplus funds", "Auto sweep", "High liquidity"},
				Benefit:  "Optimize idle cash",
			},
			InvestmentProduct{
				Product:  "Merchant Discount Rate Optimization",
				Provider: "Payment Gateway Providers",
				Features: []string{"Negotiate lower MDR", "Volume-based discounts", "Custom solutions"},
				Benefit:  fmt.Sprintf("Save ₹%.0f annually (est.)", revenue*mdrSavingsFraction),
			})
	}

	set.Insurance = append(set.Insurance,
		InsuranceProduct{
			Product:    "Business Interruption Insurance",
			Provider:   "HDFC General / ICICI Lombard",
			Coverage:   "Loss due to operational disruptions",
			PremiumMin: revenue * 0.002,
			PremiumMax: revenue * 0.005,
		},
		InsuranceProduct{
			Product:    "Key Person Insurance",
			Provider:   "LIC / HDFC Life / Max Life",
			Coverage:   "Financial protection if key business person is incapacitated",
			PremiumMin: revenue * 0.001,
			PremiumMax: revenue * 0.003,
		},
		InsuranceProduct{
			Product:    "Cyber Insurance",
			Provider:   "HDFC Ergo / Bajaj Allianz",
			Coverage:   "Protection against cyber threats and data breaches",
			PremiumMin: revenue * 0.001,
			PremiumMax: revenue * 0.002,
		})

	set.Advisory = append(set.Advisory,
		AdvisoryService{
			Service:  "Financial Planning & Advisory",
			Provider: "Bank / NBFC / Advisory Firms",
			Benefits: []string{"Customized financial strategies", "Tax optimization", "Growth planning"},
		},
		AdvisoryService{
			Service:  "GST & Compliance Advisory",
			Provider: "CA Firms / Compliance Platforms",
			Benefits: []string{"Ensure regulatory compliance", "Optimize tax filing", "Audit support"},
		},
		AdvisoryService{
			Service:  "Working Capital Optimization",
			Provider: "Supply Chain Finance Companies",
			Benefits: []string{"Improve cash conversion cycle", "Better supplier terms", "Buyer financing"},
		})

	return set
}

// industryProducts lists product names commonly structured for each sector.
var industryProducts = map[model.Industry][]string{
	model.IndustryManufacturing: {
		"Asset Financing for machinery and equipment",
		"Supply Chain Financing from component suppliers",
		"Inventory Financing",
		"Trade Credit Lines",
		"Working Capital Loan (Higher limits available)",
	},
	model.IndustryRetail: {
		"Working Capital Loan",
		"Bill Discounting",
		"Inventory Financing",
		"Retail Finance Solutions",
		"Business Overdraft",
	},
	model.IndustryEcommerce: {
		"Marketplace Finance",
		"Seller Cash Advance",
		"Inventory Financing",
		"Logistics Finance",
		"Working Capital Loan",
	},
	model.IndustryAgriculture: {
		"Kisan Credit Card (KCC)",
		"Agricultural Term Loan",
		"Crop Insurance",
		"Warehouse Receipts Finance",
		"Commodity Financing",
	},
	model.IndustryServices: {
		"Professional Loan",
		"Project-based Financing",
		"Working Capital Loan",
		"Business Overdraft",
		"Invoice Discounting",
	},
	model.IndustryLogistics: {
		"Vehicle Finance",
		"Working Capital Loan",
		"Fuel Advance",
		"Trade Credit Line",
		"Equipment Finance",
	},
}

// ByIndustry returns sector-specific product names, or nil for an
// unknown industry.
func ByIndustry(industry model.Industry) []string {
	return industryProducts[industry]
}
