package main

import (
	"log/slog"

	"github.com/phrazzld/marketmind-relay/internal/config"
	"github.com/phrazzld/marketmind-relay/internal/platform/logger"
)

// setupAppLogger installs the JSON logger at the configured level.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	return logger.Setup(cfg.Server)
}
