// ABOUTME: Error types for OpenRouter API failures.
// ABOUTME: Separates auth failures from general vision and embedding errors.
package openrouter

import (
	"errors"
	"fmt"
)

// ErrAuth indicates the API rejected the configured key.
var ErrAuth = errors.New("invalid OpenRouter API key")

// VisionError is a non-success response from the vision completion endpoint.
type VisionError struct {
	Status  int
	Message string
}

func (e *VisionError) Error() string {
	return fmt.Sprintf("vision API error %d: %s", e.Status, e.Message)
}

// EmbeddingError is a non-success response from the embeddings endpoint.
type EmbeddingError struct {
	Status  int
	Message string
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding API error %d: %s", e.Status, e.Message)
}
