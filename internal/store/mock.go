package store

import (
	"context"

	"inventox/items-import/internal/models"
)

// Mock is an in-memory catalog implementation for testing. It records
// calls and supports injected failures per barcode or category name.
type Mock struct {
	Items      map[string]models.ItemRecord
	Categories map[string]int64

	ResolveCalls []string
	UpsertCalls  []string
	FinishCalls  int
	LastAbort    bool

	// Error injection for testing failure paths
	ResolveErrors map[string]error
	UpsertErrors  map[string]error
	FinishError   error

	nextCategoryID int64
}

// NewMock returns an empty in-memory catalog.
func NewMock() *Mock {
	return &Mock{
		Items:         make(map[string]models.ItemRecord),
		Categories:    make(map[string]int64),
		ResolveErrors: make(map[string]error),
		UpsertErrors:  make(map[string]error),
	}
}

// ResolveCategory returns the stored identifier for name, assigning the
// next identifier on first sight.
func (m *Mock) ResolveCategory(_ context.Context, name string) (int64, error) {
	m.ResolveCalls = append(m.ResolveCalls, name)
	if err := m.ResolveErrors[name]; err != nil {
		return 0, err
	}
	if id, ok := m.Categories[name]; ok {
		return id, nil
	}
	m.nextCategoryID++
	m.Categories[name] = m.nextCategoryID
	return m.nextCategoryID, nil
}

// UpsertItem stores the item keyed by barcode and reports whether it
// replaced an existing entry.
func (m *Mock) UpsertItem(_ context.Context, item models.ItemRecord) (models.UpsertOutcome, error) {
	m.UpsertCalls = append(m.UpsertCalls, item.Barcode)
	if err := m.UpsertErrors[item.Barcode]; err != nil {
		return models.OutcomeInserted, err
	}
	_, existed := m.Items[item.Barcode]
	m.Items[item.Barcode] = item
	if existed {
		return models.OutcomeUpdated, nil
	}
	return models.OutcomeInserted, nil
}

// Finish records the batch outcome.
func (m *Mock) Finish(_ context.Context, abort bool) error {
	m.FinishCalls++
	m.LastAbort = abort
	return m.FinishError
}
