package validate

import (
	"math"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// Sanitize returns a cleaned copy of the dataset: rows missing a numeric
// Revenue or Expense are dropped, negative values in those columns are
// replaced with their absolute value, exact-duplicate rows are removed,
// and rows are sorted by date when every date parses. The input is never
// mutated.
func Sanitize(rs *model.RecordSet) *model.RecordSet {
	out := rs.Clone()
	if out == nil {
		return nil
	}

	kept := out.Rows[:0]
	for _, row := range out.Rows {
		_, rok := row.Field(model.ColRevenue)
		_, eok := row.Field(model.ColExpense)
		if !rok || !eok {
			continue
		}
		for _, c := range []model.Column{model.ColRevenue, model.ColExpense} {
			v := row.Fields[c]
			if v.Num < 0 {
				v.Num = math.Abs(v.Num)
				row.Fields[c] = v
			}
		}
		kept = append(kept, row)
	}
	out.Rows = kept

	return out.Dedupe().SortedByDate()
}
