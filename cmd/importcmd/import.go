// Package importcmd implements the import command: one input file in, one
// JSON result object out.
package importcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inventox/items-import/cmd/root"
	"inventox/items-import/internal/header"
	"inventox/items-import/internal/importer"
	"inventox/items-import/internal/models"
	"inventox/items-import/internal/store"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a CSV or Excel file",
	Long: `Import reads an inventory file, reconciles every row against the catalog
keyed by barcode, and prints the aggregate result as JSON on stdout. Row
failures are collected in the result; only file-level failures abort the run.`,
	Run: Run,
}

// Run executes the import. It is also wired as the root command handler so
// the binary can be invoked with just a file path. Every code path emits
// exactly one JSON result object on stdout; the process exits non-zero
// only on file-level failure.
func Run(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		Emit(models.Failure("File path not provided"))
		os.Exit(1)
	}
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		Emit(models.Failure(fmt.Sprintf("File not found: %s", path)))
		os.Exit(1)
	}

	cfg := root.Cfg
	opts := importer.Options{
		StrictHeaders: cfg.Import.StrictHeaders,
		AllOrNothing:  cfg.Import.AllOrNothing,
	}
	if root.Cmd.PersistentFlags().Changed("strict-headers") {
		opts.StrictHeaders = root.StrictHeaders
	}
	if root.Cmd.PersistentFlags().Changed("all-or-nothing") {
		opts.AllOrNothing = root.AllOrNothing
	}

	if cfg.Import.SynonymsFile != "" {
		extra, err := header.LoadSynonymsFile(cfg.Import.SynonymsFile)
		if err != nil {
			Emit(models.Failure(err.Error()))
			os.Exit(1)
		}
		opts.Synonyms = extra
	}

	ctx := context.Background()
	catalog, err := store.Open(ctx, cfg, root.Logger, store.Options{AllOrNothing: opts.AllOrNothing})
	if err != nil {
		Emit(models.Failure(fmt.Sprintf("Error connecting to database: %v", err), err.Error()))
		os.Exit(1)
	}
	defer catalog.Close()

	result := importer.New(catalog, root.Logger, opts).Import(ctx, path)
	Emit(result)
	if !result.Success {
		os.Exit(1)
	}
}

// Emit prints the result contract as a single JSON object on stdout.
func Emit(result models.ImportResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		root.Log.Errorf("Failed to encode result: %v", err)
	}
}
