// ABOUTME: Tests for vision prompt construction and error mapping.
// ABOUTME: Exercises the pure helpers; the network call itself is not mocked.
package openrouter

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/revrost/go-openrouter"
)

func TestVisionUserPrompt(t *testing.T) {
	if got := visionUserPrompt(""); got != visionPrompt {
		t.Errorf("visionUserPrompt(\"\") = %q, want base prompt", got)
	}

	got := visionUserPrompt("Bob's birthday party")
	if !strings.HasPrefix(got, visionPrompt) {
		t.Error("prompt with context should start with the base prompt")
	}
	if !strings.Contains(got, "Additional context: Bob's birthday party") {
		t.Errorf("prompt = %q, want it to carry the context", got)
	}
}

func TestPNGDataURL(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	url := pngDataURL(raw)

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("data URL = %q, want prefix %q", url, prefix)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("data URL payload is not valid base64: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Error("data URL payload does not round-trip to the original bytes")
	}
}

func TestVisionAPIErrorMapsAuth(t *testing.T) {
	err := visionAPIError(&openrouter.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"})
	if !errors.Is(err, ErrAuth) {
		t.Fatalf("visionAPIError(401) = %v, want ErrAuth", err)
	}
}

func TestVisionAPIErrorMapsStatus(t *testing.T) {
	err := visionAPIError(&openrouter.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"})
	var visErr *VisionError
	if !errors.As(err, &visErr) {
		t.Fatalf("visionAPIError(429) = %v, want *VisionError", err)
	}
	if visErr.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want %d", visErr.Status, http.StatusTooManyRequests)
	}
}

func TestVisionAPIErrorWrapsOther(t *testing.T) {
	cause := errors.New("connection refused")
	err := visionAPIError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("visionAPIError should wrap non-API errors, got %v", err)
	}
}
