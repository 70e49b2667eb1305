package importerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Path: "items.pdf", Extension: ".pdf"}
	assert.Equal(t, "Unsupported file format: .pdf", err.Error())
}

func TestMissingColumnsError(t *testing.T) {
	err := &MissingColumnsError{Missing: []string{"barcode", "name"}}
	assert.Equal(t, "Missing required columns: barcode, name", err.Error())
}

func TestHeaderCollisionError(t *testing.T) {
	err := &HeaderCollisionError{Canonical: "quantity", First: "quantidade", Second: "stock"}
	assert.Equal(t, `Ambiguous columns: both "quantidade" and "stock" map to "quantity"`, err.Error())
}

func TestRowError(t *testing.T) {
	err := &RowError{Line: 3, Reason: "barcode and name are required"}
	assert.Equal(t, "Row 3: barcode and name are required", err.Error())
}

func TestNewRowError_Unwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := NewRowError(4, cause)

	assert.Equal(t, "Row 4: duplicate key value violates unique constraint", err.Error())
	assert.ErrorIs(t, err, cause)
}
