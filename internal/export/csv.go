// Package export writes the item catalog to CSV for reporting.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"inventox/items-import/internal/logging"
	"inventox/items-import/internal/models"
)

// WriteItemsToCSV writes the catalog rows to csvFile using the csv tags on
// models.ExportRow. A header row is always written, even for an empty
// catalog.
func WriteItemsToCSV(items []models.ExportRow, csvFile string, delimiter rune, logger logging.Logger) error {
	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&items, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("failed to marshal items to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("catalog exported",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(items)})
	return nil
}
