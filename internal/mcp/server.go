// ABOUTME: MCP server initialization and configuration for imagedb.
// ABOUTME: Sets up the server with image save, search, and load tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/imagedb/imagedb/internal/pipeline"
)

// Server wraps the MCP server with the imagedb pipeline.
type Server struct {
	mcp  *gomcp.Server
	pipe *pipeline.Pipeline
}

// NewServer creates an MCP server exposing the image database.
func NewServer(pipe *pipeline.Pipeline) (*Server, error) {
	if pipe == nil {
		return nil, fmt.Errorf("pipeline is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "imagedb",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:  mcpServer,
		pipe: pipe,
	}

	s.registerImageTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
