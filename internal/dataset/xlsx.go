package dataset

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// LoadXLSX reads a spreadsheet file from disk. The first row of the sheet
// is the header. sheetName selects a sheet by name; empty means the first.
func LoadXLSX(path, sheetName string) (*model.RecordSet, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open xlsx %s", path)
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("dataset: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("dataset: workbook has no sheets")
		}
		sheet = f.Sheets[0]
	}

	var header []string
	var rows [][]string
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}

	if header == nil {
		return &model.RecordSet{}, nil
	}
	return FromRows(header, rows), nil
}
