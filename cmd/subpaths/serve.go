package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/subpaths/internal/scope"
)

var pathScope *scope.Scope

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve directory enumeration over MCP",
		Long: `serve runs a Model Context Protocol (MCP) server over stdio that
exposes filtered directory enumeration rooted at the given directory.
Tool inputs are resolved relative to that root and may not escape it.`,
		Example: `subpaths serve ~/projects`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var rootDir string
	if len(args) > 0 {
		rootDir = args[0]
	} else {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	var err error
	pathScope, err = scope.New(rootDir)
	if err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "subpaths",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
