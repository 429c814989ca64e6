package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// ReadCSV parses CSV content into a RecordSet. The first row is the header.
func ReadCSV(r io.Reader) (*model.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "dataset: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return &model.RecordSet{}, nil
	}
	return FromRows(header, rows), nil
}

// LoadCSV reads a CSV file from disk.
func LoadCSV(path string) (*model.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()
	return ReadCSV(f)
}
