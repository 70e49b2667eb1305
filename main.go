package main

import (
	"fmt"
	"os"

	"inventox/items-import/cmd/exportcmd"
	"inventox/items-import/cmd/importcmd"
	"inventox/items-import/cmd/initdb"
	"inventox/items-import/cmd/root"
	"inventox/items-import/cmd/stats"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(initdb.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(stats.Cmd)

	// Running the binary with just a file path behaves like `import <file>`,
	// which is the invocation contract callers depend on.
	root.Cmd.Run = importcmd.Run
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
