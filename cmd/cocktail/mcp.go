// ABOUTME: MCP server command implementation for cocktail.
// ABOUTME: Starts the MCP server in stdio mode for AI agent integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/2389-research/cocktail/internal/logger"
	mcppkg "github.com/2389-research/cocktail/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

The MCP server communicates via stdio, allowing AI agents to search drinks
and manage favorites, including clearing with a short undo window.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []mcppkg.ServerOption{mcppkg.WithLogger(logger.Logger)}
	if globalConfig != nil && globalConfig.Share.BaseURL != "" {
		opts = append(opts, mcppkg.WithShareBaseURL(globalConfig.Share.BaseURL))
	}

	server, err := mcppkg.NewServer(globalStore, globalClient, opts...)
	if err != nil {
		return err
	}

	return server.Serve(ctx)
}
