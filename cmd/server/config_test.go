package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/marketmind-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("MARKETMIND_DOTENV_ONLY=from-file\nMARKETMIND_DOTENV_BOTH=from-file\n"), 0o600))

	t.Setenv("MARKETMIND_DOTENV_BOTH", "from-env")
	t.Setenv("MARKETMIND_DOTENV_ONLY", "")
	require.NoError(t, os.Unsetenv("MARKETMIND_DOTENV_ONLY"))

	loadDotEnv(envFile)

	assert.Equal(t, "from-file", os.Getenv("MARKETMIND_DOTENV_ONLY"))
	assert.Equal(t, "from-env", os.Getenv("MARKETMIND_DOTENV_BOTH"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}

func TestLoadAppConfigUsesPort(t *testing.T) {
	t.Setenv("PORT", "8123")

	cfg, err := loadAppConfig()

	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, config.BackendRelay, cfg.Generation.Backend)
}

func TestLoadAppConfigInvalid(t *testing.T) {
	t.Setenv("MARKETMIND_GENERATION_BACKEND", "carrier-pigeon")

	_, err := loadAppConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
