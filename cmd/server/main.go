// Package main implements the entry point for the MarketMind relay server,
// which accepts marketing prompts over HTTP and forwards them to a
// text-generation backend.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/marketmind-relay/internal/config"
)

func main() {
	cfg, logger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads .env, configuration and logging, in that order.
func initializeApp() (*config.Config, *slog.Logger, error) {
	loadDotEnv()

	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"backend", cfg.Generation.Backend,
		"mask_failures", cfg.Generation.MaskFailures,
		"metrics_enabled", cfg.Metrics.Enabled)

	return cfg, logger, nil
}
