// ABOUTME: MCP tool implementations for image operations.
// ABOUTME: Registers save_clipboard_image, search_images, and load_image_to_clipboard.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerImageTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "save_clipboard_image",
		Description: "Save the image currently on the system clipboard into the image database. The image is described by a vision model, embedded, and indexed for semantic search. Saving the same image twice is a no-op.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"context": {"type": "string", "description": "Optional extra context to guide the description (e.g. names, places, project)"}
			}
		}`),
	}, s.handleSaveClipboardImage)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_images",
		Description: "Search saved images by text query. Returns the single best-matching image's hash, description, and file path.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Free-text search query"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchImages)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "load_image_to_clipboard",
		Description: "Find the saved image best matching a text query and place its PNG bytes on the system clipboard.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Free-text search query"}
			},
			"required": ["query"]
		}`),
	}, s.handleLoadImageToClipboard)
}

func (s *Server) handleSaveClipboardImage(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Context string `json:"context"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	res, err := s.pipe.Save(ctx, args.Context)
	if err != nil {
		return toolError("failed to save clipboard image: %v", err), nil
	}

	if res.Duplicate {
		return textResult("Image already saved.\nHash: %s\nPath: %s", res.Hash, res.Path), nil
	}

	return textResult("Image saved.\nHash: %s\nDescription: %s\nPath: %s", res.Hash, res.Description, res.Path), nil
}

func (s *Server) handleSearchImages(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Query == "" {
		return toolError("query is required"), nil
	}

	rec, err := s.pipe.Search(ctx, args.Query)
	if err != nil {
		return toolError("search failed: %v", err), nil
	}

	return textResult("Best match:\nHash: %s\nDescription: %s\nPath: %s", rec.Hash, rec.Description, rec.Path), nil
}

func (s *Server) handleLoadImageToClipboard(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Query == "" {
		return toolError("query is required"), nil
	}

	res, err := s.pipe.Load(ctx, args.Query)
	if err != nil {
		return toolError("failed to load image: %v", err), nil
	}

	return textResult("Copied image to the clipboard.\nHash: %s\nDescription: %s", res.Hash, res.Description), nil
}

// textResult creates a plain-text MCP tool result.
func textResult(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
