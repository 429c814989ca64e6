package tax

import "github.com/udyamlabs/finhealth-cli/internal/model"

// GSTRequirements lists registration and filing obligations. The GST and
// RBI checks are simulated stand-ins; no regulator connection exists.
type GSTRequirements struct {
	Required     bool     `json:"required"`
	Requirements []string `json:"requirements"`
	Penalties    []string `json:"penalties_for_non_compliance"`
}

// GSTCompliance returns the GST obligation checklist for a business.
func GSTCompliance(revenue float64, industry model.Industry) GSTRequirements {
	return GSTRequirements{
		Required: revenue > gstThreshold ||
			(revenue > gstSectorThreshold && industry != model.IndustryServices),
		Requirements: []string{
			"GST registration",
			"monthly GSTR-1 filing",
			"monthly GSTR-3B filing",
			"quarterly GSTR-1 for composition scheme",
			"maintain GST invoices for 6 years",
		},
		Penalties: []string{
			"late fee for non-filing: 100-500 per day",
			"interest at 18% p.a. on tax due",
			"prosecution under Section 122",
		},
	}
}

// IFCRequirements lists income and financial compliance obligations
// that apply to every entity type.
type IFCRequirements struct {
	EntityType   string   `json:"entity_type"`
	Requirements []string `json:"requirements"`
}

// IFCCompliance returns the baseline bookkeeping and filing checklist.
func IFCCompliance(entityType string) IFCRequirements {
	return IFCRequirements{
		EntityType: entityType,
		Requirements: []string{
			"maintain books of accounts",
			"file returns within due date",
			"keep records for 6 years",
			"Section 44AB: audit if turnover > 50L",
		},
	}
}

// RBIRequirements lists central-bank obligations per entity type.
type RBIRequirements struct {
	EntityType   string   `json:"entity_type"`
	Requirements []string `json:"requirements"`
}

// registeredEntityTypes attract the full KYC/AML requirement set.
var registeredEntityTypes = map[string]bool{
	"Private Limited": true,
	"Public Limited":  true,
	"Partnership":     true,
}

// RBICompliance returns RBI obligations for an entity type and revenue scale.
func RBICompliance(entityType string, revenue float64) RBIRequirements {
	report := RBIRequirements{EntityType: entityType}

	if registeredEntityTypes[entityType] {
		report.Requirements = append(report.Requirements,
			"RBI registration (if applicable)",
			"licensed dealer in foreign exchange",
			"Know Your Customer (KYC) compliance",
			"Anti-Money Laundering (AML) compliance",
		)
	}
	if revenue > auditThreshold {
		report.Requirements = append(report.Requirements,
			"independent audit required",
			"ROC filing mandatory",
			"financial disclosure requirements",
		)
	}
	return report
}
