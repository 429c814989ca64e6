// Package validate checks and cleans raw financial datasets before any
// metric computation. Validation never mutates its input; Sanitize returns
// a new RecordSet and is safe to run regardless of validity.
package validate

import (
	"fmt"
	"strings"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Quality score deductions per warning class.
const (
	deductNonNumeric = 10
	deductNegative   = 5
	deductBadDates   = 5
	deductShortSet   = 20
)

// Report is the outcome of validating a dataset. Errors are fatal to the
// assessment; warnings only deduct from the quality score.
type Report struct {
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	QualityScore int      `json:"quality_score"` // 0-100
}

// Run validates a dataset for completeness and plausibility.
func Run(rs *model.RecordSet) Report {
	report := Report{Valid: true, QualityScore: 100}

	if rs.Len() == 0 {
		report.Valid = false
		report.Errors = append(report.Errors, "uploaded dataset is empty")
		return report
	}

	var missing []string
	for _, c := range model.RequiredColumns {
		if !rs.HasColumn(c) {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		report.Valid = false
		report.Errors = append(report.Errors,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	for _, c := range []model.Column{model.ColRevenue, model.ColExpense} {
		if !rs.HasColumn(c) {
			continue
		}
		if n := countNonNumeric(rs, c); n > 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s column contains non-numeric values: %d rows", c, n))
			report.QualityScore -= deductNonNumeric
		}
		if n := countNegative(rs, c); n > 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s has %d negative values - please verify", c, n))
			report.QualityScore -= deductNegative
		}
	}

	if rs.HasColumn(model.ColRevenue) && rs.HasColumn(model.ColExpense) {
		loss := countLossPeriods(rs)
		if float64(loss) > float64(rs.Len())*0.5 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("business shows loss in %d out of %d months", loss, rs.Len()))
		}
	}

	if rs.HasColumn(model.ColDate) && countBadDates(rs) > 0 {
		report.Warnings = append(report.Warnings, "Date column format may be incorrect")
		report.QualityScore -= deductBadDates
	}

	if rs.Len() < 3 {
		report.Warnings = append(report.Warnings,
			"minimum 3 months of data recommended for accurate analysis")
		report.QualityScore -= deductShortSet
	}

	if report.QualityScore < 0 {
		report.QualityScore = 0
	}
	return report
}

func countNonNumeric(rs *model.RecordSet, c model.Column) int {
	var n int
	for _, row := range rs.Rows {
		v, ok := row.Fields[c]
		if ok && v.Raw != "" && !v.Valid {
			n++
		}
	}
	return n
}

func countNegative(rs *model.RecordSet, c model.Column) int {
	var n int
	for _, v := range rs.Values(c) {
		if v < 0 {
			n++
		}
	}
	return n
}

func countLossPeriods(rs *model.RecordSet) int {
	var n int
	for _, row := range rs.Rows {
		rev, rok := row.Field(model.ColRevenue)
		exp, eok := row.Field(model.ColExpense)
		if rok && eok && rev < exp {
			n++
		}
	}
	return n
}

func countBadDates(rs *model.RecordSet) int {
	var n int
	for _, row := range rs.Rows {
		if row.DateRaw != "" && !row.DateOK {
			n++
		}
	}
	return n
}
