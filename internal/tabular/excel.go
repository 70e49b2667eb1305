package tabular

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelParser reads the first worksheet of an Excel workbook. Numeric
// cells are surfaced as Number cells so downstream coercion can keep
// their numeric nature.
type ExcelParser struct{}

// NewExcelParser returns an ExcelParser.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse implements the Parser interface for Excel input.
func (p *ExcelParser) Parse(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet contains no header row")
	}

	table := &Table{Headers: rows[0]}
	for _, record := range rows[1:] {
		row := make([]Cell, 0, len(table.Headers))
		for _, field := range record {
			row = append(row, DetectCell(field))
		}
		table.Rows = append(table.Rows, padRow(row, len(table.Headers)))
	}
	return table, nil
}
