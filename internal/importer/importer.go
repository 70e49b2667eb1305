// Package importer drives the import pipeline: parse the file, normalize
// headers, validate and coerce each row, resolve categories, and upsert
// items, accumulating per-row errors without aborting the batch.
package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"inventox/items-import/internal/header"
	"inventox/items-import/internal/importerror"
	"inventox/items-import/internal/logging"
	"inventox/items-import/internal/models"
	"inventox/items-import/internal/tabular"
)

// Catalog is the store surface the pipeline needs: resolve a category name
// to an identifier (creating it when absent) and apply one item write.
// Finish closes out the run for stores that batch their writes.
type Catalog interface {
	ResolveCategory(ctx context.Context, name string) (int64, error)
	UpsertItem(ctx context.Context, item models.ItemRecord) (models.UpsertOutcome, error)
	Finish(ctx context.Context, abort bool) error
}

// Options configures one import run.
type Options struct {
	// StrictHeaders turns ambiguous header collisions into a file-level
	// error instead of last-write-wins.
	StrictHeaders bool
	// AllOrNothing makes any store failure abort and roll back the whole
	// batch instead of skipping the row.
	AllOrNothing bool
	// Synonyms extends the built-in header synonym table.
	Synonyms map[string]string
}

// Importer runs import batches against a catalog store.
type Importer struct {
	catalog Catalog
	logger  logging.Logger
	opts    Options
}

// New returns an Importer writing through the given catalog.
func New(catalog Catalog, logger logging.Logger, opts Options) *Importer {
	return &Importer{catalog: catalog, logger: logger, opts: opts}
}

// Import processes one file end to end and returns the aggregate result.
// File-level failures (unreadable file, unsupported format, missing
// required columns) come back with Success=false and zero counts; row
// failures only show up in the Errors list.
func (imp *Importer) Import(ctx context.Context, path string) models.ImportResult {
	start := time.Now()
	log := imp.logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: uuid.New().String()},
		logging.Field{Key: logging.FieldFile, Value: path},
	)

	parser, err := tabular.ForFile(path)
	if err != nil {
		log.WithError(err).Error("unsupported input file")
		return models.Failure(err.Error())
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("failed to open input file")
		return models.Failure(fmt.Sprintf("Error processing file: %v", err), err.Error())
	}
	defer func() { _ = f.Close() }()

	table, err := parser.Parse(f)
	if err != nil {
		log.WithError(err).Error("failed to parse input file")
		return models.Failure(fmt.Sprintf("Error processing file: %v", err), err.Error())
	}

	log.Debug("original columns", logging.Field{Key: logging.FieldColumn, Value: table.Headers})

	mapping, err := header.Normalize(table.Headers, header.Options{
		Strict: imp.opts.StrictHeaders,
		Extra:  imp.opts.Synonyms,
	})
	if err != nil {
		log.WithError(err).Error("header validation failed")
		return models.Failure(err.Error())
	}

	log.Debug("normalized columns",
		logging.Field{Key: logging.FieldColumn, Value: mapping.Columns},
		logging.Field{Key: "renames", Value: mapping.Renames})

	result := models.NewImportResult()
	categories := make(map[string]int64)
	abort := false

	for i, row := range table.Rows {
		// 1-based data row plus the header line
		line := i + 2

		item, err := buildItem(row, mapping, line)
		if err != nil {
			log.WithError(err).Debug("row rejected", logging.Field{Key: logging.FieldRow, Value: line})
			result.AddRowError(err)
			continue
		}

		if item.CategoryName != "" {
			id, ok := categories[item.CategoryName]
			if !ok {
				id, err = imp.catalog.ResolveCategory(ctx, item.CategoryName)
				if err != nil {
					result.AddRowError(importerror.NewRowError(line, err))
					if imp.opts.AllOrNothing {
						abort = true
						break
					}
					continue
				}
				categories[item.CategoryName] = id
			}
			item.CategoryID = &id
		}

		outcome, err := imp.catalog.UpsertItem(ctx, item)
		if err != nil {
			log.WithError(err).Warn("row write failed",
				logging.Field{Key: logging.FieldRow, Value: line},
				logging.Field{Key: logging.FieldBarcode, Value: item.Barcode})
			result.AddRowError(importerror.NewRowError(line, err))
			if imp.opts.AllOrNothing {
				abort = true
				break
			}
			continue
		}

		switch outcome {
		case models.OutcomeInserted:
			result.Imported++
		case models.OutcomeUpdated:
			result.Updated++
		}
	}

	if err := imp.catalog.Finish(ctx, abort); err != nil {
		log.WithError(err).Error("failed to finish batch")
		return models.Failure(fmt.Sprintf("Error finishing import: %v", err), err.Error())
	}
	if abort {
		failure := models.Failure("Import aborted: a write failed in all-or-nothing mode")
		failure.Errors = result.Errors
		return failure
	}

	result.Finish()
	log.Info("import finished",
		logging.Field{Key: logging.FieldImported, Value: result.Imported},
		logging.Field{Key: logging.FieldUpdated, Value: result.Updated},
		logging.Field{Key: logging.FieldErrors, Value: len(result.Errors)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return result
}
