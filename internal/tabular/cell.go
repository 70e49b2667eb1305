package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind identifies the variant stored in a Cell.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellText is a free-text cell.
	CellText
	// CellNumber is a numeric cell. Text keeps the original rendering.
	CellNumber
)

// Cell is a single tabular value as produced by the file-parsing layer.
// It is a tagged variant: Empty, Text, or Number.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// EmptyCell returns a cell with no value.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text cell, or an empty cell for the empty string.
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, Text: s}
}

// DetectCell classifies a raw string as Empty, Number, or Text.
// Spreadsheet parsers use this so numeric cells keep their numeric nature.
func DetectCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EmptyCell()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Text: s, Number: n}
	}
	return Cell{Kind: CellText, Text: s}
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || strings.TrimSpace(c.Text) == ""
}

// String returns the cell's text content with surrounding whitespace removed.
// Number cells render their original text when available.
func (c Cell) String() string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellNumber:
		if c.Text != "" {
			return strings.TrimSpace(c.Text)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return strings.TrimSpace(c.Text)
	}
}

// Int coerces the cell to an integer. Empty cells default to 0. Numeric
// cells are truncated toward zero, matching the tolerance of spreadsheet
// tools that store whole numbers as floats.
func (c Cell) Int() (int64, error) {
	if c.IsEmpty() {
		return 0, nil
	}
	if c.Kind == CellNumber {
		return int64(c.Number), nil
	}
	s := c.String()
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%q is not a valid integer", s)
}

// Decimal coerces the cell to a decimal value. Empty cells default to 0.
func (c Cell) Decimal() (decimal.Decimal, error) {
	if c.IsEmpty() {
		return decimal.Zero, nil
	}
	if c.Kind == CellNumber {
		return decimal.NewFromFloat(c.Number), nil
	}
	d, err := decimal.NewFromString(c.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid number", c.String())
	}
	return d, nil
}
