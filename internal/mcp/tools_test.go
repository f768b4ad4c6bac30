// ABOUTME: Tests for the image MCP tool handlers.
// ABOUTME: Covers save_clipboard_image, search_images, load_image_to_clipboard.
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/imagedb/imagedb/internal/clipboard"
	"github.com/imagedb/imagedb/internal/pipeline"
	"github.com/imagedb/imagedb/internal/store"
)

type fakeClipboard struct {
	image   []byte
	written []byte
}

func (f *fakeClipboard) ReadImage() ([]byte, error) {
	if len(f.image) == 0 {
		return nil, clipboard.ErrNoImage
	}
	return f.image, nil
}

func (f *fakeClipboard) WriteImage(b []byte) error {
	f.written = b
	return nil
}

type fakeDescriber struct{ description string }

func (f *fakeDescriber) DescribeImage(ctx context.Context, png []byte, extra string) (string, error) {
	return f.description, nil
}

type fakeEmbedder struct{ vec []float32 }

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, nil
}

// tinyPNG is a valid 1x1 PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0xf8, 0xcf, 0xc0, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0x03, 0x00, 0x05, 0xfe, 0x02, 0xfe, 0xa7,
	0x35, 0x81, 0x84, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func makeImageServer(t *testing.T, clip *fakeClipboard) *Server {
	t.Helper()

	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}

	vec := make([]float32, store.Dimension)
	vec[0] = 1

	pipe := &pipeline.Pipeline{
		Clipboard: clip,
		Describer: &fakeDescriber{description: "a tiny test image"},
		Embedder:  &fakeEmbedder{vec: vec},
		Store:     st,
	}

	server, err := NewServer(pipe)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server
}

func callReq(t *testing.T, args interface{}) *gomcp.CallToolRequest {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}
	return &gomcp.CallToolRequest{
		Params: &gomcp.CallToolParamsRaw{
			Arguments: argsJSON,
		},
	}
}

func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(*gomcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *TextContent", result.Content[0])
	}
	return text.Text
}

func TestSaveClipboardImageTool(t *testing.T) {
	clip := &fakeClipboard{image: tinyPNG}
	s := makeImageServer(t, clip)

	result, err := s.handleSaveClipboardImage(context.Background(), callReq(t, map[string]string{}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "a tiny test image") {
		t.Errorf("result %q should mention the description", resultText(t, result))
	}

	// Saving again reports the duplicate
	result, err = s.handleSaveClipboardImage(context.Background(), callReq(t, map[string]string{}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "already saved") {
		t.Errorf("result %q should report the duplicate", resultText(t, result))
	}
}

func TestSaveClipboardImageToolEmptyClipboard(t *testing.T) {
	s := makeImageServer(t, &fakeClipboard{})

	result, err := s.handleSaveClipboardImage(context.Background(), callReq(t, map[string]string{}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for empty clipboard")
	}
}

func TestSearchImagesTool(t *testing.T) {
	clip := &fakeClipboard{image: tinyPNG}
	s := makeImageServer(t, clip)

	if _, err := s.handleSaveClipboardImage(context.Background(), callReq(t, map[string]string{})); err != nil {
		t.Fatalf("save handler error: %v", err)
	}

	result, err := s.handleSearchImages(context.Background(), callReq(t, map[string]string{"query": "tiny"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "a tiny test image") {
		t.Errorf("result %q should mention the match description", resultText(t, result))
	}
}

func TestSearchImagesToolRequiresQuery(t *testing.T) {
	s := makeImageServer(t, &fakeClipboard{})

	result, err := s.handleSearchImages(context.Background(), callReq(t, map[string]string{}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for a missing query")
	}
}

func TestLoadImageToClipboardTool(t *testing.T) {
	clip := &fakeClipboard{image: tinyPNG}
	s := makeImageServer(t, clip)

	if _, err := s.handleSaveClipboardImage(context.Background(), callReq(t, map[string]string{})); err != nil {
		t.Fatalf("save handler error: %v", err)
	}

	result, err := s.handleLoadImageToClipboard(context.Background(), callReq(t, map[string]string{"query": "tiny"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, result))
	}
	if string(clip.written) != string(tinyPNG) {
		t.Error("clipboard did not receive the stored PNG bytes")
	}
}

func TestLoadImageToClipboardToolEmptyStore(t *testing.T) {
	s := makeImageServer(t, &fakeClipboard{})

	result, err := s.handleLoadImageToClipboard(context.Background(), callReq(t, map[string]string{"query": "anything"}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for an empty store")
	}
}
