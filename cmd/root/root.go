// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"inventox/items-import/internal/config"
	"inventox/items-import/internal/logging"
)

var (
	// Log is the shared logrus instance for commands
	Log = logrus.New()

	// Logger is the shared structured logger handed to internal packages
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cfg is the loaded application configuration, populated before any
	// command runs
	Cfg *config.Config

	// Cmd is the root command. Running it with a file argument behaves like
	// the import subcommand, preserving the single-argument invocation
	// contract of the legacy import script. main wires the Run handler to
	// avoid an import cycle with the import command package.
	Cmd = &cobra.Command{
		Use:   "items-import [file]",
		Short: "Import inventory items from CSV or Excel files into the catalog.",
		Long: `items-import reconciles tabular inventory files against the item catalog.
Column headers are normalized against a multilingual synonym table, rows are
validated and coerced, categories are created on demand, and each item is
inserted or updated keyed by its barcode. The result is printed as a single
JSON object on stdout.`,
		// a bare file path must reach Run instead of being rejected as an
		// unknown subcommand
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			Logger = logging.NewLogrusAdapterFromLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().BoolVar(&StrictHeaders, "strict-headers", false,
		"Treat ambiguous header collisions as an error instead of last-write-wins")
	Cmd.PersistentFlags().BoolVar(&AllOrNothing, "all-or-nothing", false,
		"Roll back the whole batch if any row write fails")
}

// Flag targets shared with the import command. Config supplies the
// defaults; an explicitly set flag wins.
var (
	StrictHeaders bool
	AllOrNothing  bool
)
