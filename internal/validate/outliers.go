package validate

import (
	"fmt"
	"math"
	"sort"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// ColumnOutliers flags the rows of one column lying outside the IQR fences
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Rows are reported, never removed.
type ColumnOutliers struct {
	Column model.Column `json:"column"`
	Rows   []int        `json:"rows"` // zero-based row indices
	Values []float64    `json:"values"`
}

// OutlierReport summarizes outlier detection across all numeric columns.
type OutlierReport struct {
	Detected        bool             `json:"detected"`
	Columns         []ColumnOutliers `json:"columns"`
	Recommendations []string         `json:"recommendations"`
}

// Outliers runs IQR fence detection on every recognized numeric column
// present in the dataset.
func Outliers(rs *model.RecordSet) OutlierReport {
	var report OutlierReport
	for _, c := range model.NumericColumns {
		if !rs.HasColumn(c) {
			continue
		}
		co := columnOutliers(rs, c)
		if len(co.Rows) == 0 {
			continue
		}
		report.Detected = true
		report.Columns = append(report.Columns, co)
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("found %d outliers in %s column - verify these entries", len(co.Rows), c))
	}
	return report
}

func columnOutliers(rs *model.RecordSet, c model.Column) ColumnOutliers {
	vals := rs.Values(c)
	out := ColumnOutliers{Column: c}
	if len(vals) == 0 {
		return out
	}

	q1 := quantile(vals, 0.25)
	q3 := quantile(vals, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	for i, row := range rs.Rows {
		v, ok := row.Field(c)
		if !ok {
			continue
		}
		if v < lower || v > upper {
			out.Rows = append(out.Rows, i)
			out.Values = append(out.Values, v)
		}
	}
	return out
}

// quantile computes the q-th quantile with linear interpolation between
// closest ranks.
func quantile(vals []float64, q float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
