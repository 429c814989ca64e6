// Package tax evaluates Indian tax compliance rules against the metrics
// record. Thresholds are literal regulatory constants, kept as written
// rather than re-derived.
package tax

import (
	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Registration and filing thresholds (INR).
const (
	gstThreshold         = 4_000_000
	gstSectorThreshold   = 2_000_000
	slab30Threshold      = 5_000_000
	slab25Threshold      = 2_500_000
	slab20Threshold      = 1_000_000
	tdsThreshold         = 3_000_000
	auditThreshold       = 10_000_000
	msmeManufacturingCap = 5_000_000
	msmeGeneralCap       = 2_500_000
)

// Compliance status values.
const (
	StatusCompliant = "compliant"
	StatusWarning   = "warning"
)

// Report holds the compliance check outcome.
type Report struct {
	Status          string   `json:"status"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	GSTEligible     bool     `json:"gst_eligible"`
	IncomeTaxSlab   string   `json:"income_tax_slab"`
	ComplianceScore int      `json:"compliance_score"` // starts at 100
}

// gstSectors are the industries subject to the lower GST registration threshold.
var gstSectors = map[model.Industry]bool{
	model.IndustryManufacturing: true,
	model.IndustryServices:      true,
	model.IndustryEcommerce:     true,
}

// Check runs the compliance rule table. Revenue and expenses are dataset
// totals; the metrics record supplies nothing further here but keeps the
// signature uniform across advisory modules.
func Check(m model.Metrics, revenue, expenses float64, industry model.Industry) Report {
	report := Report{
		Status:          StatusCompliant,
		IncomeTaxSlab:   slab(revenue),
		ComplianceScore: 100,
	}

	if revenue > gstThreshold {
		report.GSTEligible = true
	} else if revenue > gstSectorThreshold && gstSectors[industry] {
		report.GSTEligible = true
	}

	if expenses > revenue {
		report.Issues = append(report.Issues, "expenses exceed revenue - review accounting")
		report.Status = StatusWarning
		report.ComplianceScore -= 20
	}

	var margin float64
	if revenue > 0 {
		margin = (revenue - expenses) / revenue * 100
	}
	if margin < 0 {
		report.Issues = append(report.Issues,
			"negative profit margin - potential loss carryforward needed")
		report.Recommendations = append(report.Recommendations,
			"file ITR with loss carryforward provisions")
		report.ComplianceScore -= 15
	}

	if revenue > tdsThreshold {
		report.Recommendations = append(report.Recommendations,
			"ensure TDS deduction and remittance on due date")
	}
	if revenue > auditThreshold {
		report.Recommendations = append(report.Recommendations,
			"statutory audit required as per Companies Act")
	}

	// MSME classification is keyed by the (revenue cap, industry) pair.
	if revenue <= msmeManufacturingCap && industry == model.IndustryManufacturing {
		report.Recommendations = append(report.Recommendations,
			"you qualify for MSME benefits - register on MSME portal")
	} else if revenue <= msmeGeneralCap && industry != model.IndustryManufacturing {
		report.Recommendations = append(report.Recommendations,
			"you qualify for MSME benefits - register on MSME portal")
	}

	// Standing recommendations, always present.
	report.Recommendations = append(report.Recommendations,
		"maintain proper books of accounts for minimum 6 years",
		"file GSTR returns on time (monthly/quarterly)",
	)

	return report
}

// slab resolves the income tax band. Bands are strict greater-than checks
// applied in descending order; the first match wins.
func slab(revenue float64) string {
	switch {
	case revenue > slab30Threshold:
		return "30%"
	case revenue > slab25Threshold:
		return "25%"
	case revenue > slab20Threshold:
		return "20%"
	default:
		return "No tax (Below threshold)"
	}
}
