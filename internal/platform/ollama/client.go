// Package ollama provides a generation.Generator backed by a local Ollama
// server's chat endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/phrazzld/marketmind-relay/internal/generation"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message *chatMessage `json:"message"`
	Error   string       `json:"error,omitempty"`
}

// Client is a tiny HTTP client for talking to Ollama's /api/chat.
type Client struct {
	BaseURL      string
	Model        string
	SystemPrompt string
	httpClient   *http.Client
}

// New returns a Client for the Ollama server at base using model.
func New(base, model string) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: ollama URL cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: ollama model cannot be empty", generation.ErrInvalidConfig)
	}
	return &Client{
		BaseURL:      strings.TrimRight(base, "/"),
		Model:        model,
		SystemPrompt: generation.MarketingSystemPrompt,
		httpClient:   &http.Client{},
	}, nil
}

// Generate implements generation.Generator. The system prompt and the user
// prompt are sent as a non-streaming chat exchange.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if c.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: c.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	b, err := json.Marshal(chatRequest{Model: c.Model, Messages: messages, Stream: false})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrUpstreamUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", generation.ErrUpstreamUnavailable, err)
	}

	var out chatResponse
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(raw))
		if decodeErr == nil && out.Error != "" {
			detail = out.Error
		}
		return "", fmt.Errorf("%w: ollama returned status %d: %s",
			generation.ErrUpstreamUnavailable, resp.StatusCode, detail)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrInvalidResponse, decodeErr)
	}
	if out.Message == nil {
		return "", fmt.Errorf("%w: response has no message", generation.ErrInvalidResponse)
	}

	content := strings.TrimSpace(out.Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", generation.ErrInvalidResponse)
	}
	return content, nil
}

var _ generation.Generator = (*Client)(nil)
