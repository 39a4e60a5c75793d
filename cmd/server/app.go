package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/marketmind-relay/internal/config"
	"github.com/phrazzld/marketmind-relay/internal/generation"
	"github.com/phrazzld/marketmind-relay/internal/metrics"
	"github.com/phrazzld/marketmind-relay/internal/platform/gemini"
	"github.com/phrazzld/marketmind-relay/internal/platform/ollama"
	"github.com/phrazzld/marketmind-relay/internal/platform/relay"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	// metrics is nil when the Prometheus endpoint is disabled.
	metrics *metrics.Metrics

	generationService *generation.Service
}

// newApplication builds the configured backend and the generation service
// around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var observer generation.Observer
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		observer = app.metrics
	}

	generator, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.Generation.Backend, err)
	}

	app.generationService, err = generation.NewService(generator, generation.ServiceConfig{
		Backend:      cfg.Generation.Backend,
		FallbackText: cfg.Generation.FallbackText,
		MaskFailures: cfg.Generation.MaskFailures,
	}, logger, observer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation service: %w", err)
	}

	logger.Info("Application initialized successfully", "backend", cfg.Generation.Backend)
	return app, nil
}

// newGenerator selects the text-generation backend named in the config.
func newGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Generation.Backend {
	case config.BackendRelay:
		client, err := relay.New(cfg.Generation.UpstreamURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using relay backend", "upstream_url", cfg.Generation.UpstreamURL)
		return client, nil

	case config.BackendOllama:
		client, err := ollama.New(cfg.Ollama.URL, cfg.Ollama.Model)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Ollama backend", "url", cfg.Ollama.URL, "model", cfg.Ollama.Model)
		return client, nil

	case config.BackendGemini:
		generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Gemini backend", "model", cfg.Gemini.Model)
		return generator, nil

	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Generation.Backend)
	}
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources after the server stops.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
