// Package header maps heterogeneous, human-authored column labels onto the
// importer's canonical field names.
package header

import (
	"strings"

	"inventox/items-import/internal/importerror"
	"inventox/items-import/internal/models"
)

// Options controls header normalization behavior.
type Options struct {
	// Strict makes two raw headers mapping to the same canonical field a
	// hard error. The default policy is last-write-wins.
	Strict bool
	// Extra synonyms merged over the built-in table.
	Extra map[string]string
}

// Mapping is the outcome of normalizing one header row.
type Mapping struct {
	// Columns maps final field names to their column index. When two raw
	// headers collapsed onto one name, the later column wins.
	Columns map[string]int
	// Renames records which normalized labels were renamed by the synonym
	// table, for diagnostics.
	Renames map[string]string
}

// Column returns the column index for a field name and whether the field
// is present.
func (m *Mapping) Column(name string) (int, bool) {
	idx, ok := m.Columns[name]
	return idx, ok
}

// Normalize canonicalizes a raw header row. Noise columns (empty labels
// and positional "unnamed:" artifacts) are dropped, synonym matches are
// renamed to their canonical field, and anything else passes through
// unchanged for the validator to ignore. If barcode or name is missing
// afterwards the whole import is rejected.
func Normalize(headers []string, opts Options) (*Mapping, error) {
	synonyms := defaultSynonyms
	if len(opts.Extra) > 0 {
		synonyms = make(map[string]string, len(defaultSynonyms)+len(opts.Extra))
		for k, v := range defaultSynonyms {
			synonyms[k] = v
		}
		for k, v := range opts.Extra {
			synonyms[k] = v
		}
	}

	mapping := &Mapping{
		Columns: make(map[string]int),
		Renames: make(map[string]string),
	}
	sources := make(map[string]string)

	for idx, raw := range headers {
		label := normalizeLabel(raw)
		if label == "" || strings.HasPrefix(label, "unnamed:") {
			continue
		}

		name := label
		if canonical, ok := synonyms[label]; ok {
			name = canonical
			mapping.Renames[label] = canonical
		}

		if first, seen := sources[name]; seen && isCanonical(name) {
			if opts.Strict {
				return nil, &importerror.HeaderCollisionError{
					Canonical: name,
					First:     first,
					Second:    label,
				}
			}
			// last-write-wins: the later column silently replaces the
			// earlier mapping
		}
		sources[name] = label
		mapping.Columns[name] = idx
	}

	var missing []string
	for _, required := range models.RequiredFields {
		if _, ok := mapping.Columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &importerror.MissingColumnsError{Missing: missing}
	}
	return mapping, nil
}

// normalizeLabel lowercases a raw header, strips a UTF-8 BOM artifact and
// surrounding whitespace, and replaces internal spaces with underscores.
func normalizeLabel(raw string) string {
	label := strings.ReplaceAll(raw, "\uFEFF", "")
	label = strings.ToLower(strings.TrimSpace(label))
	return strings.ReplaceAll(label, " ", "_")
}

func isCanonical(name string) bool {
	for _, field := range models.CanonicalFields {
		if name == field {
			return true
		}
	}
	return false
}
