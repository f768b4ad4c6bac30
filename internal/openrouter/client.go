// ABOUTME: OpenRouter API client for vision descriptions and text embeddings.
// ABOUTME: Wraps go-openrouter for chat completions and calls /embeddings directly.
package openrouter

import (
	"net/http"
	"time"

	"github.com/revrost/go-openrouter"
)

const (
	// EmbeddingModel is fixed: vectors in the store are only comparable when
	// every record was embedded by the same model.
	EmbeddingModel = "qwen/qwen3-embedding-8b"

	// Dimension is the output size of EmbeddingModel.
	Dimension = 4096

	defaultEmbeddingsURL = "https://openrouter.ai/api/v1/embeddings"
)

// Client talks to OpenRouter for both vision descriptions and embeddings.
type Client struct {
	apiKey        string
	visionModel   string
	embeddingsURL string
	chat          *openrouter.Client
	http          *http.Client
}

// Option configures optional Client behavior.
type Option func(*Client)

// WithEmbeddingsURL overrides the embeddings endpoint, for tests.
func WithEmbeddingsURL(url string) Option {
	return func(c *Client) {
		c.embeddingsURL = url
	}
}

// WithHTTPClient overrides the HTTP client used for the embeddings endpoint.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates an OpenRouter client using the configured API key and
// vision model.
func NewClient(apiKey, visionModel string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		visionModel:   visionModel,
		embeddingsURL: defaultEmbeddingsURL,
		chat:          openrouter.NewClient(apiKey, openrouter.WithXTitle("imagedb")),
		http:          &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
