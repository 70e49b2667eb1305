package importer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"inventox/items-import/internal/logging"
	"inventox/items-import/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewLogrusAdapter("error", "text")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImport_InsertsAndReportsRowErrors(t *testing.T) {
	// second data row has a blank barcode: skipped with a row error tagged
	// with line 3 (1-based data ordinal plus the header line)
	path := writeFile(t, "items.csv",
		"Barcode,Name,Quantity\n111,Widget,5\n,Bad,\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, []string{"Row 3: barcode and name are required"}, result.Errors)

	item, ok := mock.Items["111"]
	require.True(t, ok)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, int64(5), item.Quantity)
}

func TestImport_TrimsBarcodeAndName(t *testing.T) {
	path := writeFile(t, "items.csv", "Barcode,Name\n  111  ,  Widget  \n   ,X\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	item, ok := mock.Items["111"]
	require.True(t, ok)
	assert.Equal(t, "Widget", item.Name)

	// whitespace-only barcode is empty after trimming
	assert.Equal(t, []string{"Row 3: barcode and name are required"}, result.Errors)
}

func TestImport_ReimportUpdates(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name\n111,Widget\n222,Gadget\n")

	mock := store.NewMock()
	imp := New(mock, testLogger(), Options{})

	first := imp.Import(context.Background(), path)
	assert.Equal(t, 2, first.Imported)
	assert.Equal(t, 0, first.Updated)

	second := imp.Import(context.Background(), path)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.Updated)
	assert.Empty(t, second.Errors)
}

func TestImport_CategoryResolvedOncePerName(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Categoria\n1,A,Ferramentas\n2,B,Ferramentas\n3,C,Ferramentas\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, []string{"Ferramentas"}, mock.ResolveCalls,
		"the run cache must resolve each distinct category exactly once")

	id := mock.Categories["Ferramentas"]
	for _, barcode := range []string{"1", "2", "3"} {
		require.NotNil(t, mock.Items[barcode].CategoryID)
		assert.Equal(t, id, *mock.Items[barcode].CategoryID)
	}
}

func TestImport_EmptyCategoryIsNotResolved(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Categoria\n1,A,  \n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	assert.Empty(t, mock.ResolveCalls)
	assert.Nil(t, mock.Items["1"].CategoryID)
}

func TestImport_NumericDefaultsAndErrors(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Quantity,Preço,Qtd Minima\n"+
			"1,A,,,\n"+
			"2,B,many,,\n"+
			"3,C,4,1.50,2\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 3: invalid quantity")

	blank := mock.Items["1"]
	assert.Equal(t, int64(0), blank.Quantity)
	assert.Equal(t, int64(0), blank.MinQuantity)
	assert.True(t, blank.UnitPrice.IsZero())

	full := mock.Items["3"]
	assert.Equal(t, int64(4), full.Quantity)
	assert.Equal(t, int64(2), full.MinQuantity)
	assert.Equal(t, "1.5", full.UnitPrice.String())
}

func TestImport_OptionalFieldsBecomeAbsent(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Descrição,Localização,Fornecedor\n1,A,  ,Aisle 3,\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	item := mock.Items["1"]
	assert.Nil(t, item.Description)
	require.NotNil(t, item.Location)
	assert.Equal(t, "Aisle 3", *item.Location)
	assert.Nil(t, item.Supplier)
}

func TestImport_MissingRequiredColumns(t *testing.T) {
	path := writeFile(t, "items.csv", "Quantity,Location\n5,Aisle\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	assert.False(t, result.Success)
	assert.Equal(t, "Missing required columns: barcode, name", result.Message)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Updated)
	assert.Empty(t, mock.UpsertCalls, "no rows may be attempted")
}

func TestImport_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "items.pdf", "not tabular")

	result := New(store.NewMock(), testLogger(), Options{}).Import(context.Background(), path)

	assert.False(t, result.Success)
	assert.Equal(t, "Unsupported file format: .pdf", result.Message)
}

func TestImport_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	result := New(store.NewMock(), testLogger(), Options{}).Import(context.Background(), path)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error processing file:")
	require.Len(t, result.Errors, 1)
}

func TestImport_StoreErrorIsRowScoped(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name\n1,A\n2,B\n3,C\n")

	mock := store.NewMock()
	mock.UpsertErrors["2"] = errors.New("duplicate key value violates unique constraint")

	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	assert.True(t, result.Success, "a row-scoped store failure must not abort the batch")
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, []string{"Row 3: duplicate key value violates unique constraint"}, result.Errors)
	assert.Equal(t, []string{"1", "2", "3"}, mock.UpsertCalls)
	assert.False(t, mock.LastAbort)
}

func TestImport_AllOrNothingAbortsOnStoreError(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name\n1,A\n2,B\n3,C\n")

	mock := store.NewMock()
	mock.UpsertErrors["2"] = errors.New("disk full")

	result := New(mock, testLogger(), Options{AllOrNothing: true}).Import(context.Background(), path)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"1", "2"}, mock.UpsertCalls, "rows after the failure are not attempted")
	assert.Equal(t, 1, mock.FinishCalls)
	assert.True(t, mock.LastAbort)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Updated)
}

func TestImport_StrictHeadersRejectCollision(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Quantidade,Stock\n1,A,2,3\n")

	result := New(store.NewMock(), testLogger(), Options{StrictHeaders: true}).
		Import(context.Background(), path)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Ambiguous columns")
}

func TestImport_LastWriteWinsCollision(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Barcode,Name,Quantidade,Stock\n1,A,2,3\n")

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	assert.Equal(t, int64(3), mock.Items["1"].Quantity, "the later column wins")
}

func TestImport_SummaryMessage(t *testing.T) {
	path := writeFile(t, "items.csv", "Barcode,Name\n1,A\n")

	result := New(store.NewMock(), testLogger(), Options{}).Import(context.Background(), path)

	assert.Equal(t, "Import completed: 1 imported, 0 updated", result.Message)
}

func TestImport_ResultJSONContract(t *testing.T) {
	path := writeFile(t, "items.csv", "Barcode,Name\n1,A\n")

	result := New(store.NewMock(), testLogger(), Options{}).Import(context.Background(), path)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"success", "message", "imported", "updated", "errors"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, []interface{}{}, decoded["errors"], "errors must marshal as an array, never null")
}

func TestImport_ExcelInput(t *testing.T) {
	// the pipeline is format-agnostic past the tabular layer; an Excel
	// file with the same cells behaves exactly like the CSV
	path := filepath.Join(t.TempDir(), "items.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Código Barras", "Artigo", "Qtd. Stock"},
		{"111", "Widget", 5},
	})

	mock := store.NewMock()
	result := New(mock, testLogger(), Options{}).Import(context.Background(), path)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, int64(5), mock.Items["111"].Quantity)
}

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}
