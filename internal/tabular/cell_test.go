package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind CellKind
	}{
		{"empty", "", CellEmpty},
		{"whitespace only", "   ", CellEmpty},
		{"integer", "42", CellNumber},
		{"decimal", "9.95", CellNumber},
		{"negative", "-3", CellNumber},
		{"text", "Widget", CellText},
		{"mixed", "12 units", CellText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, DetectCell(tt.in).Kind)
		})
	}
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "", EmptyCell().String())
	assert.Equal(t, "Widget", TextCell("  Widget  ").String())
	assert.Equal(t, "42", DetectCell("42").String())
	assert.Equal(t, "9.95", DetectCell(" 9.95 ").String())
}

func TestCell_Int(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell
		want    int64
		wantErr bool
	}{
		{"empty defaults to zero", EmptyCell(), 0, false},
		{"blank text defaults to zero", TextCell("   "), 0, false},
		{"integer text", TextCell("7"), 7, false},
		{"float text truncates", TextCell("7.9"), 7, false},
		{"numeric cell truncates", DetectCell("5.0"), 5, false},
		{"negative", TextCell("-2"), -2, false},
		{"non-numeric text", TextCell("abc"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cell.Int()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCell_Decimal(t *testing.T) {
	d, err := TextCell(" 9.95 ").Decimal()
	require.NoError(t, err)
	assert.Equal(t, "9.95", d.String())

	d, err = EmptyCell().Decimal()
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = TextCell("cheap").Decimal()
	assert.Error(t, err)
}
