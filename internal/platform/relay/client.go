// Package relay implements the forwarding client: it posts a prompt to an
// HTTP text-generation service and extracts the generated text.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/marketmind-relay/internal/generation"
)

// maxErrorBody caps how much of a failed upstream response is kept for the error.
const maxErrorBody = 512

type generateRequest struct {
	Message string `json:"message"`
}

type generateResponse struct {
	GeneratedText *string `json:"generated_text"`
}

// Client forwards prompts to a generation endpoint. It is safe for
// concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// New returns a Client posting to endpoint, for example
// http://localhost:8000/generate/.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: upstream URL cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Generate implements generation.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Message: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", generation.ErrInvalidConfig, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrUpstreamUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: upstream returned status %d: %s",
			generation.ErrUpstreamUnavailable, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", generation.ErrInvalidResponse, err)
	}
	if out.GeneratedText == nil {
		return "", fmt.Errorf("%w: response has no generated_text field", generation.ErrInvalidResponse)
	}

	return *out.GeneratedText, nil
}

var _ generation.Generator = (*Client)(nil)
