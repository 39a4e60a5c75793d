package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/marketmind-relay/internal/config"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a valid relay configuration pointing at upstreamURL.
func newTestConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			AllowedOrigins:         []string{"*"},
			ShutdownTimeoutSeconds: 5,
		},
		Generation: config.GenerationConfig{
			Backend:      config.BackendRelay,
			UpstreamURL:  upstreamURL,
			MaskFailures: true,
			FallbackText: config.DefaultFallbackText,
		},
		Ollama: config.OllamaConfig{
			URL:   config.DefaultOllamaURL,
			Model: config.DefaultOllamaModel,
		},
		Gemini: config.GeminiConfig{
			Model: config.DefaultGeminiModel,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestServer builds the application for cfg and serves its router.
func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	app, err := newApplication(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

// postJSON sends body to path on srv and returns the response and its body.
func postJSON(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

// closedServerURL returns the URL of a server that is no longer listening.
func closedServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/generate/"
	srv.Close()
	return url
}
