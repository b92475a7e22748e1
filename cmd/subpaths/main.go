// Package main implements the subpaths CLI and MCP server.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:   "subpaths",
		Short: "Filtered recursive directory enumeration",
		Long: `subpaths lists every filesystem entry reachable from a starting
directory, subject to type filters, visibility filters, depth limits,
symlink policy, and exclude/include rules.`,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newServeCmd())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}
