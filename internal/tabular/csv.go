package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVParser reads UTF-8 comma-separated files. Records may have varying
// field counts; short rows are padded to the header width.
type CSVParser struct {
	Delimiter rune
}

// NewCSVParser returns a CSVParser with the default comma delimiter.
func NewCSVParser() *CSVParser {
	return &CSVParser{Delimiter: ','}
}

// Parse implements the Parser interface for CSV input.
func (p *CSVParser) Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.Delimiter
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("file contains no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	table := &Table{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+2, err)
		}
		row := make([]Cell, 0, len(headers))
		for _, field := range record {
			row = append(row, TextCell(field))
		}
		table.Rows = append(table.Rows, padRow(row, len(headers)))
	}
	return table, nil
}
