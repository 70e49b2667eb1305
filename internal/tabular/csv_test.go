package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_Parse(t *testing.T) {
	input := "Barcode,Name,Quantity\n111,Widget,5\n222,Gadget,\n"

	table, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Barcode", "Name", "Quantity"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "111", table.Rows[0][0].String())
	assert.Equal(t, "Widget", table.Rows[0][1].String())
	assert.True(t, table.Rows[1][2].IsEmpty())
}

func TestCSVParser_ShortRowsArePadded(t *testing.T) {
	input := "Barcode,Name,Quantity\n111,Widget\n"

	table, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, table.Rows[0], 3)
	assert.True(t, table.Rows[0][2].IsEmpty())
}

func TestCSVParser_EmptyFile(t *testing.T) {
	_, err := NewCSVParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCSVParser_KeepsBOMForNormalizer(t *testing.T) {
	input := "\uFEFFBarcode,Name\n111,Widget\n"

	table, err := NewCSVParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	// the BOM survives here; header normalization strips it downstream
	assert.Equal(t, "\uFEFFBarcode", table.Headers[0])
}

func TestForFile(t *testing.T) {
	p, err := ForFile("inventory.csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVParser{}, p)

	p, err = ForFile("Inventory.XLSX")
	require.NoError(t, err)
	assert.IsType(t, &ExcelParser{}, p)

	_, err = ForFile("inventory.pdf")
	require.Error(t, err)
	assert.Equal(t, "Unsupported file format: .pdf", err.Error())
}
