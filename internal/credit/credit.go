// Package credit performs the detailed creditworthiness assessment: rating,
// default risk, loan eligibility, risk factors, strengths and concerns.
// Every sub-check is an independent threshold rule on the metrics record;
// none of them fails on out-of-range input.
package credit

import (
	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Report is the full creditworthiness assessment.
type Report struct {
	OverallScore    float64      `json:"overall_score"`
	Rating          Rating       `json:"credit_rating"`
	DefaultRisk     DefaultRisk  `json:"default_risk"`
	LoanEligibility []LoanOffer  `json:"loan_eligibility"`
	RiskFactors     []RiskFactor `json:"risk_factors"`
	Strengths       []string     `json:"strengths"`
	Concerns        []string     `json:"areas_of_concern"`
}

// Assess composes the sub-assessments for a business.
func Assess(m model.Metrics, score float64, industry model.Industry, revenue float64) Report {
	return Report{
		OverallScore:    score,
		Rating:          Rate(score),
		DefaultRisk:     AssessDefaultRisk(score),
		LoanEligibility: LoanMatrix(score, revenue),
		RiskFactors:     RiskFactors(m, industry),
		Strengths:       Strengths(m),
		Concerns:        Concerns(m),
	}
}

// Rating is a credit tier on a CIBIL-like scale.
type Rating struct {
	Rating              string `json:"rating"`
	Description         string `json:"description"`
	ApprovalProbability string `json:"loan_approval_probability"`
	RateAdjustment      string `json:"recommended_interest_rate"`
}

// ratingLadder lists tiers in descending order; the first tier whose
// inclusive lower bound the score meets wins.
var ratingLadder = []struct {
	floor float64
	tier  Rating
}{
	{85, Rating{"AAA", "Excellent - Minimal Risk", "95%+", "Current Market Rate - 2%"}},
	{75, Rating{"AA", "Very Good - Low Risk", "85-95%", "Current Market Rate - 1%"}},
	{65, Rating{"A", "Good - Moderate Risk", "70-85%", "Current Market Rate"}},
	{50, Rating{"BBB", "Fair - Acceptable Risk", "50-70%", "Current Market Rate + 1-2%"}},
}

var ratingFloorTier = Rating{"B", "Poor - High Risk", "<50%", "Current Market Rate + 3-5%"}

// Rate assigns the credit rating for a health score.
func Rate(score float64) Rating {
	for _, band := range ratingLadder {
		if score >= band.floor {
			return band.tier
		}
	}
	return ratingFloorTier
}

// DefaultRisk estimates the probability of default from the score.
type DefaultRisk struct {
	ProbabilityPct float64 `json:"default_probability_pct"`
	Level          string  `json:"risk_level"`
	Interpretation string  `json:"interpretation"`
}

// AssessDefaultRisk maps the score to a default probability and its
// interpretation bands.
func AssessDefaultRisk(score float64) DefaultRisk {
	probability := 100 - score*1.2
	if probability < 0 {
		probability = 0
	}

	level := "High"
	switch {
	case probability < 15:
		level = "Low"
	case probability < 35:
		level = "Medium"
	}

	return DefaultRisk{
		ProbabilityPct: probability,
		Level:          level,
		Interpretation: interpretDefaultRisk(probability),
	}
}

func interpretDefaultRisk(probability float64) string {
	switch {
	case probability < 5:
		return "Very low likelihood of default"
	case probability < 15:
		return "Low likelihood of default - good credit profile"
	case probability < 35:
		return "Moderate likelihood of default - monitor performance"
	case probability < 60:
		return "High likelihood of default - significant risk"
	default:
		return "Critical risk - not recommended for lending"
	}
}
