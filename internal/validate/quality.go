package validate

import (
	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// QualityReport summarizes dataset completeness for display.
type QualityReport struct {
	TotalRows     int                  `json:"total_rows"`
	TotalColumns  int                  `json:"total_columns"`
	MissingValues map[model.Column]int `json:"missing_values"`
	DuplicateRows int                  `json:"duplicate_rows"`
	DateRange     string               `json:"date_range"`
	QualityScore  int                  `json:"quality_score"` // 0-100
}

// Quality builds a data-quality summary. The score starts at 100 and loses
// up to 20 points for missing values and up to 10 for duplicates.
func Quality(rs *model.RecordSet) QualityReport {
	report := QualityReport{
		TotalRows:     rs.Len(),
		TotalColumns:  len(rs.Columns),
		MissingValues: make(map[model.Column]int),
		QualityScore:  100,
		DateRange:     "N/A",
	}

	var missing int
	for _, c := range rs.Columns {
		if c == model.ColDate {
			continue
		}
		var n int
		for _, row := range rs.Rows {
			if _, ok := row.Field(c); !ok {
				n++
			}
		}
		report.MissingValues[c] = n
		missing += n
	}
	if missing > 0 {
		d := missing * 5
		if d > 20 {
			d = 20
		}
		report.QualityScore -= d
	}

	report.DuplicateRows = rs.Len() - rs.Dedupe().Len()
	if report.DuplicateRows > 0 {
		d := report.DuplicateRows * 2
		if d > 10 {
			d = 10
		}
		report.QualityScore -= d
	}

	if rs.HasColumn(model.ColDate) && rs.Len() > 0 {
		min, max := rs.Rows[0], rs.Rows[0]
		valid := min.DateOK
		for _, row := range rs.Rows[1:] {
			if !row.DateOK {
				continue
			}
			if !valid || row.Date.Before(min.Date) {
				min = row
			}
			if !valid || row.Date.After(max.Date) {
				max = row
			}
			valid = true
		}
		if valid {
			report.DateRange = min.Date.Format("2006-01-02") + " to " + max.Date.Format("2006-01-02")
		}
	}

	return report
}
