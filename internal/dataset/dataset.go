// Package dataset loads financial record sets from CSV and XLSX sources.
// It only parses; cleaning and business logic live in validate and metrics.
package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006-01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"Jan",
	"January",
}

// ParseDate parses a date cell against the supported layouts.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumber parses a numeric cell. Currency symbols, thousands separators
// and surrounding whitespace are tolerated.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FromRows builds a RecordSet from a header row and data rows. Only
// recognized columns are retained; matching is case-sensitive per the
// input contract.
func FromRows(header []string, rows [][]string) *model.RecordSet {
	recognized := make(map[string]model.Column)
	recognized[string(model.ColDate)] = model.ColDate
	for _, c := range model.NumericColumns {
		recognized[string(c)] = c
	}

	var cols []model.Column
	idx := make(map[int]model.Column)
	for i, name := range header {
		c, ok := recognized[strings.TrimSpace(name)]
		if !ok {
			continue
		}
		idx[i] = c
		cols = append(cols, c)
	}

	rs := &model.RecordSet{Columns: cols}
	for _, raw := range rows {
		if isBlankRow(raw) {
			continue
		}
		row := model.Row{Fields: make(map[model.Column]model.Value)}
		for i, cell := range raw {
			c, ok := idx[i]
			if !ok {
				continue
			}
			if c == model.ColDate {
				row.DateRaw = strings.TrimSpace(cell)
				row.Date, row.DateOK = ParseDate(cell)
				continue
			}
			num, valid := ParseNumber(cell)
			row.Fields[c] = model.Value{Raw: strings.TrimSpace(cell), Num: num, Valid: valid}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
