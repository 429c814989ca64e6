// Package model defines the value objects shared across the assessment
// engine: the raw tabular dataset, the derived metrics record, and the
// industry enumeration used as a benchmark lookup key.
package model

import (
	"sort"
	"strings"
	"time"
)

// Column names a recognized dataset column. Matching is case-sensitive.
type Column string

const (
	ColDate        Column = "Date"
	ColRevenue     Column = "Revenue"
	ColExpense     Column = "Expense"
	ColReceivable  Column = "Receivable"
	ColPayable     Column = "Payable"
	ColLoan        Column = "Loan"
	ColReceivables Column = "Receivables"
	ColPayables    Column = "Payables"
	ColInventory   Column = "Inventory"
	ColSalaries    Column = "Salaries"
	ColPersonnel   Column = "Personnel"
)

// RequiredColumns must be present for an assessment to run.
var RequiredColumns = []Column{ColDate, ColRevenue, ColExpense}

// OptionalColumns are recognized when present and defaulted when absent.
var OptionalColumns = []Column{
	ColReceivable, ColPayable, ColLoan,
	ColReceivables, ColPayables, ColInventory,
	ColSalaries, ColPersonnel,
}

// NumericColumns lists every recognized numeric column in display order.
var NumericColumns = []Column{
	ColRevenue, ColExpense,
	ColReceivable, ColPayable, ColLoan,
	ColReceivables, ColPayables, ColInventory,
	ColSalaries, ColPersonnel,
}

// Value is a single numeric cell: the raw text as uploaded plus its parse.
type Value struct {
	Raw   string  `json:"raw"`
	Num   float64 `json:"num"`
	Valid bool    `json:"valid"` // Num holds a meaningful parse of Raw
}

// Row is one period of financial data. Insertion order across rows is
// chronological order and is semantically significant: the first and last
// rows anchor the growth calculation.
type Row struct {
	Date    time.Time        `json:"date"`
	DateOK  bool             `json:"date_ok"` // Date holds a successful parse of DateRaw
	DateRaw string           `json:"date_raw"`
	Fields  map[Column]Value `json:"fields"`
}

// Field returns the cell for a column, reporting whether it holds a valid number.
func (r Row) Field(c Column) (float64, bool) {
	v, ok := r.Fields[c]
	if !ok || !v.Valid {
		return 0, false
	}
	return v.Num, true
}

// key builds a comparable identity for exact-duplicate detection.
func (r Row) key(cols []Column) string {
	var b strings.Builder
	b.WriteString(r.DateRaw)
	for _, c := range cols {
		b.WriteByte('\x1f')
		b.WriteString(r.Fields[c].Raw)
	}
	return b.String()
}

// RecordSet is an ordered table of financial rows with named columns.
// It is never mutated after construction; operations that clean or reorder
// rows return a new set.
type RecordSet struct {
	Columns []Column `json:"columns"` // input order
	Rows    []Row    `json:"rows"`
}

// Len returns the number of rows.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// HasColumn reports whether the named column was present in the input.
func (rs *RecordSet) HasColumn(c Column) bool {
	if rs == nil {
		return false
	}
	for _, col := range rs.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// Values returns every valid numeric value of a column in row order.
func (rs *RecordSet) Values(c Column) []float64 {
	if rs == nil {
		return nil
	}
	out := make([]float64, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if v, ok := row.Field(c); ok {
			out = append(out, v)
		}
	}
	return out
}

// Sum totals the valid values of a column. Absent columns sum to 0.
func (rs *RecordSet) Sum(c Column) float64 {
	var total float64
	for _, v := range rs.Values(c) {
		total += v
	}
	return total
}

// Mean averages the valid values of a column. ok is false when the column
// holds no valid values.
func (rs *RecordSet) Mean(c Column) (float64, bool) {
	vals := rs.Values(c)
	if len(vals) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range vals {
		total += v
	}
	return total / float64(len(vals)), true
}

// Clone deep-copies the set.
func (rs *RecordSet) Clone() *RecordSet {
	if rs == nil {
		return nil
	}
	out := &RecordSet{
		Columns: append([]Column(nil), rs.Columns...),
		Rows:    make([]Row, len(rs.Rows)),
	}
	for i, row := range rs.Rows {
		fields := make(map[Column]Value, len(row.Fields))
		for c, v := range row.Fields {
			fields[c] = v
		}
		out.Rows[i] = Row{Date: row.Date, DateOK: row.DateOK, DateRaw: row.DateRaw, Fields: fields}
	}
	return out
}

// SortedByDate returns a copy with rows stably ordered by parsed date.
// If any row's date failed to parse the original order is kept.
func (rs *RecordSet) SortedByDate() *RecordSet {
	out := rs.Clone()
	if out == nil {
		return nil
	}
	for _, row := range out.Rows {
		if !row.DateOK {
			return out
		}
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].Date.Before(out.Rows[j].Date)
	})
	return out
}

// Dedupe returns a copy with exact-duplicate rows removed, keeping the
// first occurrence.
func (rs *RecordSet) Dedupe() *RecordSet {
	out := rs.Clone()
	if out == nil {
		return nil
	}
	seen := make(map[string]bool, len(out.Rows))
	kept := out.Rows[:0]
	for _, row := range out.Rows {
		k := row.key(out.Columns)
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, row)
	}
	out.Rows = kept
	return out
}
