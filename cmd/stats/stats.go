// Package stats implements the stats command, which prints an inventory
// snapshot as JSON.
package stats

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"inventox/items-import/cmd/root"
	"inventox/items-import/internal/store"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Print inventory statistics as JSON",
	Long: `Stats reports the catalog totals: item count, category count, items at or
below their minimum quantity, and the total stock value.`,
	Run: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	st, err := store.Open(ctx, root.Cfg, root.Logger, store.Options{})
	if err != nil {
		root.Log.Fatalf("Error connecting to database: %v", err)
	}
	defer st.Close()

	snapshot, err := st.Stats(ctx)
	if err != nil {
		root.Log.Fatalf("Error computing statistics: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snapshot); err != nil {
		root.Log.Fatalf("Failed to encode statistics: %v", err)
	}
}
