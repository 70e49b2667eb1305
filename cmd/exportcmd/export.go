// Package exportcmd implements the export command, which dumps the item
// catalog to a CSV file.
package exportcmd

import (
	"context"

	"github.com/spf13/cobra"

	"inventox/items-import/cmd/root"
	"inventox/items-import/internal/export"
	"inventox/items-import/internal/store"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the item catalog to CSV",
	Long: `Export writes every catalog item to a CSV file, with the category name
denormalized, ordered by item name.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "items.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	st, err := store.Open(ctx, root.Cfg, root.Logger, store.Options{})
	if err != nil {
		root.Log.Fatalf("Error connecting to database: %v", err)
	}
	defer st.Close()

	items, err := st.ListItems(ctx)
	if err != nil {
		root.Log.Fatalf("Error reading catalog: %v", err)
	}

	delimiter := []rune(root.Cfg.Export.Delimiter)[0]
	if err := export.WriteItemsToCSV(items, outputFile, delimiter, root.Logger); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}
}
