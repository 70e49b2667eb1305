// Package models defines the canonical data structures shared by the
// import pipeline, the catalog store, and the command layer.
package models

import (
	"github.com/shopspring/decimal"
)

// CanonicalFields lists the nine normalized item attributes the importer
// recognizes, in catalog column order.
var CanonicalFields = []string{
	"barcode",
	"name",
	"description",
	"category",
	"quantity",
	"min_quantity",
	"unit_price",
	"location",
	"supplier",
}

// RequiredFields are the canonical columns that must survive header
// normalization for an import to proceed at all.
var RequiredFields = []string{"barcode", "name"}

// ItemRecord is the canonical per-row entity built from one input row.
// It is never persisted directly: the store translates it into either an
// INSERT or an UPDATE keyed by Barcode.
type ItemRecord struct {
	Barcode     string
	Name        string
	Description *string
	Quantity    int64
	MinQuantity int64
	UnitPrice   decimal.Decimal
	Location    *string
	Supplier    *string

	// CategoryName is the trimmed free-text label from the input row;
	// empty means the row carries no category.
	CategoryName string
	// CategoryID is filled in by the category resolver before the upsert.
	CategoryID *int64
}

// Category is a catalog category. Categories are created lazily by the
// importer and never updated or deleted by it.
type Category struct {
	ID   int64
	Name string
}

// UpsertOutcome reports whether an upsert inserted a fresh item or updated
// an existing one.
type UpsertOutcome int

const (
	// OutcomeInserted means no item with the barcode existed yet.
	OutcomeInserted UpsertOutcome = iota
	// OutcomeUpdated means an existing item was overwritten.
	OutcomeUpdated
)
