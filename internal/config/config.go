package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
	Ollama     OllamaConfig     `mapstructure:"ollama"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins is the CORS origin list. "*" allows every origin.
	AllowedOrigins         []string `mapstructure:"allowed_origins"          validate:"required,min=1"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// Backend names accepted by GenerationConfig.Backend.
const (
	BackendRelay  = "relay"
	BackendOllama = "ollama"
	BackendGemini = "gemini"
)

// GenerationConfig controls which text-generation backend serves requests
// and how its failures surface to HTTP clients.
type GenerationConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=relay ollama gemini"`

	// UpstreamURL is the endpoint the relay backend posts {"message": ...} to.
	UpstreamURL string `mapstructure:"upstream_url" validate:"required,url"`

	// MaskFailures returns FallbackText with a 200 status when the backend
	// fails. When false, failures surface as 502.
	MaskFailures bool   `mapstructure:"mask_failures"`
	FallbackText string `mapstructure:"fallback_text" validate:"required"`
}

// OllamaConfig contains settings for the Ollama chat backend.
type OllamaConfig struct {
	URL   string `mapstructure:"url"   validate:"omitempty,url"`
	Model string `mapstructure:"model"`
}

// GeminiConfig contains settings for the Gemini backend.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
