package header

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultSynonyms maps normalized raw header labels to canonical field
// names. It covers the Portuguese and English spellings seen in supplier
// files, with and without diacritics. Keys are compared after
// normalization (lowercase, trimmed, spaces replaced by underscores).
var defaultSynonyms = map[string]string{
	"barcode":           "barcode",
	"codigo_barras":     "barcode",
	"código_barras":     "barcode",
	"cód._barras":       "barcode",
	"cod._barras":       "barcode",
	"codigo":            "barcode",
	"name":              "name",
	"nome":              "name",
	"artigo":            "name",
	"produto":           "name",
	"descricao":         "description",
	"descrição":         "description",
	"description":       "description",
	"categoria":         "category",
	"category":          "category",
	"quantity":          "quantity",
	"quantidade":        "quantity",
	"qtd":               "quantity",
	"qtd._stock":        "quantity",
	"qtd_stock":         "quantity",
	"stock":             "quantity",
	"min_quantity":      "min_quantity",
	"quantidade_minima": "min_quantity",
	"qtd_minima":        "min_quantity",
	"unit_price":        "unit_price",
	"preco_unitario":    "unit_price",
	"preço_unitario":    "unit_price",
	"custo_unitário":    "unit_price",
	"preco":             "unit_price",
	"preço":             "unit_price",
	"pvp":               "unit_price",
	"pvp1":              "unit_price",
	"location":          "location",
	"localizacao":       "location",
	"localização":       "location",
	"supplier":          "supplier",
	"fornecedor":        "supplier",
}

// LoadSynonymsFile reads an optional YAML map of extra header synonyms
// (normalized label to canonical field name) to merge over the built-in
// table. Entries must target one of the canonical fields.
func LoadSynonymsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	extra := make(map[string]string)
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file %s: %w", path, err)
	}

	for label, canonical := range extra {
		if !isCanonical(canonical) {
			return nil, fmt.Errorf("synonym %q targets unknown field %q", label, canonical)
		}
	}
	return extra, nil
}
