package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/marketmind-relay/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New("", "orca-mini:latest")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = New("http://localhost:11434", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	c, err := New("http://localhost:11434/", "orca-mini:latest")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", c.BaseURL)
}

func TestGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"model":"orca-mini:latest","message":{"role":"assistant","content":"  Sip the sunshine.  "},"done":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "orca-mini:latest")
	require.NoError(t, err)

	text, err := c.Generate(context.Background(), "lemonade stand")

	require.NoError(t, err)
	assert.Equal(t, "Sip the sunshine.", text)
	assert.Equal(t, "orca-mini:latest", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, generation.MarketingSystemPrompt, got.Messages[0].Content)
	assert.Equal(t, chatMessage{Role: "user", Content: "lemonade stand"}, got.Messages[1])
}

func TestGenerateWithoutSystemPrompt(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "llama3")
	require.NoError(t, err)
	c.SystemPrompt = ""

	_, err = c.Generate(context.Background(), "hi")

	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		errContains string
	}{
		{
			name:        "model missing",
			status:      http.StatusNotFound,
			body:        `{"error":"model 'orca-mini:latest' not found"}`,
			expectedErr: generation.ErrUpstreamUnavailable,
			errContains: "not found",
		},
		{
			name:        "non JSON error body",
			status:      http.StatusBadGateway,
			body:        "bad gateway",
			expectedErr: generation.ErrUpstreamUnavailable,
			errContains: "status 502: bad gateway",
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"message":`,
			expectedErr: generation.ErrInvalidResponse,
		},
		{
			name:        "no message",
			status:      http.StatusOK,
			body:        `{"done":true}`,
			expectedErr: generation.ErrInvalidResponse,
		},
		{
			name:        "empty content",
			status:      http.StatusOK,
			body:        `{"message":{"role":"assistant","content":"   "}}`,
			expectedErr: generation.ErrInvalidResponse,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL, "orca-mini:latest")
			require.NoError(t, err)

			_, err = c.Generate(context.Background(), "prompt")

			assert.ErrorIs(t, err, tc.expectedErr)
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
		})
	}
}
