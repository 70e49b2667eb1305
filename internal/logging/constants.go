package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the importer, making
// logs easier to parse, filter, and analyze.
const (
	FieldFile     = "file_path"
	FieldRunID    = "run_id"
	FieldRow      = "row"
	FieldBarcode  = "barcode"
	FieldCategory = "category"
	FieldColumn   = "column"
	FieldReason   = "reason"
	FieldCount    = "count"
	FieldImported = "imported"
	FieldUpdated  = "updated"
	FieldErrors   = "errors"
	FieldDuration = "duration_ms"
)
