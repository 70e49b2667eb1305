// Package importerror defines the typed errors produced by the import
// pipeline. File-level errors abort the run before any row is processed;
// RowError is scoped to a single input row and never aborts the batch.
package importerror

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError indicates the input file extension is not one the
// importer knows how to parse.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported file format: %s", e.Extension)
}

// MissingColumnsError indicates that required canonical columns are absent
// after header normalization. No rows are processed when this is returned.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("Missing required columns: %s", strings.Join(e.Missing, ", "))
}

// HeaderCollisionError indicates that two distinct raw headers normalize to
// the same canonical field. Only returned in strict header mode; the default
// policy is last-write-wins.
type HeaderCollisionError struct {
	Canonical string
	First     string
	Second    string
}

func (e *HeaderCollisionError) Error() string {
	return fmt.Sprintf("Ambiguous columns: both %q and %q map to %q",
		e.First, e.Second, e.Canonical)
}

// RowError is a failure attributable to one input row. Line is the 1-based
// line number as seen in the source file, header line included.
type RowError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Line, e.Reason)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError builds a RowError from an underlying error, surfacing its
// message verbatim as the reason.
func NewRowError(line int, err error) *RowError {
	return &RowError{Line: line, Reason: err.Error(), Err: err}
}
