// ABOUTME: Vision model calls producing natural-language image descriptions.
// ABOUTME: Sends PNG bytes as a base64 data URL to the configured chat model.
package openrouter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/revrost/go-openrouter"
)

const visionPrompt = "Describe the image in detail. If there is any text present, fully transcribe it. Do not use any formating, keep it short (1-3 paragraphs)."

// DescribeImage asks the configured vision model for a description of the
// PNG. The optional extra string is appended to the prompt to steer the
// description.
func (c *Client) DescribeImage(ctx context.Context, png []byte, extra string) (string, error) {
	request := openrouter.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openrouter.ChatCompletionMessage{
			openrouter.UserMessageWithImage(visionUserPrompt(extra), pngDataURL(png)),
		},
	}

	completion, err := c.chat.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", visionAPIError(err)
	}

	if len(completion.Choices) == 0 {
		return "", &VisionError{Message: "completion returned no choices"}
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content.Text)
	if text == "" {
		return "", &VisionError{Message: "completion returned no content"}
	}

	return text, nil
}

func visionUserPrompt(extra string) string {
	if extra == "" {
		return visionPrompt
	}
	return fmt.Sprintf("%s Additional context: %s", visionPrompt, extra)
}

func pngDataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func visionAPIError(err error) error {
	var apiErr *openrouter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return fmt.Errorf("vision request: %w", ErrAuth)
		}
		return &VisionError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	return fmt.Errorf("vision request failed: %w", err)
}
