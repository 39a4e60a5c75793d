package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable except PORT.
const EnvPrefix = "MARKETMIND"

// Defaults applied before any file or environment source is read.
const (
	DefaultPort         = 3000
	DefaultUpstreamURL  = "http://localhost:8000/generate/"
	DefaultFallbackText = "Failed to generate prompt."
	DefaultOllamaURL    = "http://localhost:11434"
	DefaultOllamaModel  = "orca-mini:latest"
	DefaultGeminiModel  = "gemini-2.5-flash"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT wins over the prefixed variable.
	if err := v.BindEnv("server.port", "PORT", EnvPrefix+"_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch cfg.Generation.Backend {
	case BackendGemini:
		if cfg.Gemini.APIKey == "" {
			return errors.New("config validation failed: gemini.api_key is required for the gemini backend")
		}
	case BackendOllama:
		if cfg.Ollama.URL == "" || cfg.Ollama.Model == "" {
			return errors.New("config validation failed: ollama.url and ollama.model are required for the ollama backend")
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("generation.backend", BackendRelay)
	v.SetDefault("generation.upstream_url", DefaultUpstreamURL)
	v.SetDefault("generation.mask_failures", true)
	v.SetDefault("generation.fallback_text", DefaultFallbackText)

	v.SetDefault("ollama.url", DefaultOllamaURL)
	v.SetDefault("ollama.model", DefaultOllamaModel)

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", DefaultGeminiModel)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
