// Package initdb implements the initdb command, which creates the catalog
// schema and seed categories.
package initdb

import (
	"context"

	"github.com/spf13/cobra"

	"inventox/items-import/cmd/root"
	"inventox/items-import/internal/store"
)

// Cmd represents the initdb command
var Cmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the categories and items tables",
	Long: `Create the catalog schema (categories and items tables, indexes, and the
default categories). All statements are idempotent, so initdb can be re-run
against an existing database.`,
	Run: initdbFunc,
}

func initdbFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	st, err := store.Open(ctx, root.Cfg, root.Logger, store.Options{})
	if err != nil {
		root.Log.Fatalf("Error connecting to database: %v", err)
	}
	defer st.Close()

	if err := st.InitSchema(ctx); err != nil {
		root.Log.Fatalf("Error initializing schema: %v", err)
	}
	root.Log.Info("Database schema is ready")
}
