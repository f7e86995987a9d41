// Package gemini is a thin client for text generation against the Gemini
// API. Domain packages build their own prompts; this layer only handles
// transport.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Client wraps the genai SDK for plain prompt-in/text-out calls.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateText runs one prompt and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}
