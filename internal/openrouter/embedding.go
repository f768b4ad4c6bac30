// ABOUTME: Embedding calls against the OpenRouter /embeddings endpoint.
// ABOUTME: Plain JSON-over-HTTP client since go-openrouter only covers chat.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// embeddingsRequest is the JSON body sent to the embeddings endpoint.
type embeddingsRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	EncodingFormat string `json:"encoding_format"`
}

// embeddingsResponse maps the embeddings endpoint response envelope.
type embeddingsResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embed fetches an embedding vector for the given text. The returned vector
// always has exactly Dimension entries.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embeddingsRequest{
		Model:          EmbeddingModel,
		Input:          text,
		EncodingFormat: "float",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embeddings request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.embeddingsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("embeddings request: %w", ErrAuth)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &EmbeddingError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	var parsed embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embeddings response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, &EmbeddingError{Status: resp.StatusCode, Message: "response contained no embeddings"}
	}

	vec := parsed.Data[0].Embedding
	if len(vec) != Dimension {
		return nil, fmt.Errorf("embedding has %d dimensions, want %d", len(vec), Dimension)
	}
	return vec, nil
}
