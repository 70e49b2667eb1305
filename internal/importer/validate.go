package importer

import (
	"fmt"

	"inventox/items-import/internal/header"
	"inventox/items-import/internal/importerror"
	"inventox/items-import/internal/models"
	"inventox/items-import/internal/tabular"
)

// buildItem validates and coerces one data row into an ItemRecord.
// line is the 1-based line number in the source file, header included.
func buildItem(row []tabular.Cell, mapping *header.Mapping, line int) (models.ItemRecord, error) {
	cell := func(name string) tabular.Cell {
		idx, ok := mapping.Column(name)
		if !ok || idx >= len(row) {
			return tabular.EmptyCell()
		}
		return row[idx]
	}

	item := models.ItemRecord{
		Barcode: cell("barcode").String(),
		Name:    cell("name").String(),
	}
	if item.Barcode == "" || item.Name == "" {
		return item, &importerror.RowError{Line: line, Reason: "barcode and name are required"}
	}

	item.Description = optional(cell("description"))
	item.Location = optional(cell("location"))
	item.Supplier = optional(cell("supplier"))
	item.CategoryName = cell("category").String()

	var err error
	if item.Quantity, err = cell("quantity").Int(); err != nil {
		return item, rowError(line, "quantity", err)
	}
	if item.MinQuantity, err = cell("min_quantity").Int(); err != nil {
		return item, rowError(line, "min_quantity", err)
	}
	if item.UnitPrice, err = cell("unit_price").Decimal(); err != nil {
		return item, rowError(line, "unit_price", err)
	}

	return item, nil
}

// optional trims a cell and maps the empty string to nil, so blank values
// are stored as absent rather than as empty strings.
func optional(c tabular.Cell) *string {
	s := c.String()
	if s == "" {
		return nil
	}
	return &s
}

func rowError(line int, field string, err error) *importerror.RowError {
	return &importerror.RowError{
		Line:   line,
		Reason: fmt.Sprintf("invalid %s: %v", field, err),
		Err:    err,
	}
}
