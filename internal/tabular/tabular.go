// Package tabular turns delimited text and spreadsheet files into an
// ordered sequence of rows of tagged cells. It knows nothing about the
// inventory schema; header interpretation happens downstream.
package tabular

import (
	"io"
	"path/filepath"
	"strings"

	"inventox/items-import/internal/importerror"
)

// Table is the parsed content of one input file: the raw header row and
// the data rows beneath it. Every row is padded to the header width.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// Parser reads an input file format and produces a Table.
// Implementations return an error when the content cannot be read at all;
// such errors are file-level failures for the import.
type Parser interface {
	Parse(r io.Reader) (*Table, error)
}

// ForFile returns the parser for the given file path based on its
// extension. Unknown extensions yield an UnsupportedFormatError.
func ForFile(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx", ".xls":
		return NewExcelParser(), nil
	default:
		return nil, &importerror.UnsupportedFormatError{Path: path, Extension: ext}
	}
}

// padRow extends row to width columns with empty cells.
func padRow(row []Cell, width int) []Cell {
	for len(row) < width {
		row = append(row, EmptyCell())
	}
	return row
}
