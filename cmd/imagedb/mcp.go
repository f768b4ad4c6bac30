// ABOUTME: MCP command that serves the image database tools over stdio.
// ABOUTME: Runs until the client disconnects or the process is signalled.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/imagedb/imagedb/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Expose save, search, and load as Model Context Protocol tools over
stdin/stdout, for use by MCP clients such as coding agents.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipe, err := newPipeline()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(pipe)
	if err != nil {
		return err
	}

	return server.Serve(ctx)
}
