package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ImportResult is the aggregate outcome of one import run. Its JSON shape
// is a stable contract for callers that parse the importer's stdout.
type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Errors   []string `json:"errors"`
}

// NewImportResult returns a zeroed result with a non-nil error list so the
// errors field always marshals as an array, never null.
func NewImportResult() ImportResult {
	return ImportResult{Errors: []string{}}
}

// Failure builds a file-level failure result. No rows were attempted, so
// the counts stay at zero. The underlying errors, if any, are surfaced in
// the errors list.
func Failure(message string, errs ...string) ImportResult {
	r := NewImportResult()
	r.Message = message
	r.Errors = append(r.Errors, errs...)
	return r
}

// AddRowError appends one row-scoped failure. Row failures never flip the
// file-level success flag.
func (r *ImportResult) AddRowError(err error) {
	r.Errors = append(r.Errors, err.Error())
}

// Finish marks the run as successful and fills in the summary message.
func (r *ImportResult) Finish() {
	r.Success = true
	r.Message = fmt.Sprintf("Import completed: %d imported, %d updated", r.Imported, r.Updated)
}

// ExportRow is one line of the catalog export, with the category name
// denormalized. The csv tags drive the gocsv writer.
type ExportRow struct {
	Barcode     string `csv:"barcode"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Quantity    int64  `csv:"quantity"`
	MinQuantity int64  `csv:"min_quantity"`
	UnitPrice   string `csv:"unit_price"`
	Location    string `csv:"location"`
	Supplier    string `csv:"supplier"`
}

// InventoryStats is the aggregate snapshot printed by the stats command.
type InventoryStats struct {
	TotalItems      int64           `json:"total_items"`
	TotalCategories int64           `json:"total_categories"`
	LowStockItems   int64           `json:"low_stock_items"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}
