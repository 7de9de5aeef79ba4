package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apimap/apimap/internal/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Start MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server over stdio.

This lets AI agents request surface maps as tool calls instead of spawning
the CLI and reading artifact files from disk. Maps are computed on demand
from the current state of the source tree.

Available Tools:
  apimap_surface   Full surface map per project (structured JSON)
  apimap_summary   Surface counts only

Examples:
  apimap serve             # Serve maps for the current directory
  apimap serve ./src       # Serve maps for a specific root`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	s := mcp.New(root, Version)
	return s.ServeStdio()
}
