package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/marketmind-relay/internal/platform/logger"
	"github.com/phrazzld/marketmind-relay/internal/redact"
)

// Outcome is the result of one generation attempt: either generated text or
// the error that prevented it.
type Outcome struct {
	Text string
	Err  error
}

// Failed reports whether the attempt produced an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Observer receives one call per generation attempt. outcome is "success" or
// "failure".
type Observer interface {
	ObserveGeneration(backend, outcome string, duration time.Duration)
}

// ServiceConfig holds the failure policy applied by Service.
type ServiceConfig struct {
	// Backend names the configured generator; used for logs and metrics.
	Backend string

	// FallbackText replaces the generated text when the backend fails.
	FallbackText string

	// MaskFailures asks the front door to answer failures with FallbackText
	// and a success status instead of surfacing them.
	MaskFailures bool
}

// Service wraps a Generator with validation, logging, metrics and the
// configured failure policy. It holds no per-request state.
type Service struct {
	generator Generator
	config    ServiceConfig
	logger    *slog.Logger
	observer  Observer
}

// NewService creates a Service around generator. observer may be nil.
func NewService(generator Generator, cfg ServiceConfig, log *slog.Logger, observer Observer) (*Service, error) {
	if generator == nil {
		return nil, fmt.Errorf("%w: generator cannot be nil", ErrInvalidConfig)
	}
	if cfg.FallbackText == "" {
		return nil, fmt.Errorf("%w: fallback text cannot be empty", ErrInvalidConfig)
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		generator: generator,
		config:    cfg,
		logger:    log,
		observer:  observer,
	}, nil
}

// MaskFailures reports whether failures should be answered with FallbackText.
func (s *Service) MaskFailures() bool {
	return s.config.MaskFailures
}

// FallbackText returns the text used in place of a failed generation.
func (s *Service) FallbackText() string {
	return s.config.FallbackText
}

// Generate runs one generation attempt for req. A failed Outcome carries
// FallbackText in Text so callers that mask failures can use it directly.
func (s *Service) Generate(ctx context.Context, req Request) Outcome {
	if err := req.Validate(); err != nil {
		return Outcome{Err: err}
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, req.Text())
	elapsed := time.Since(start)

	log := s.loggerFor(ctx)
	if err != nil {
		s.observe("failure", elapsed)
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "Error generating prompt",
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
		return Outcome{Text: s.config.FallbackText, Err: err}
	}

	s.observe("success", elapsed)
	log.DebugContext(ctx, "Prompt generated",
		"prompt_length", len(req.Prompt),
		"result_length", len(text),
		"duration_ms", elapsed.Milliseconds())

	return Outcome{Text: text}
}

// GenerateText forwards prompt and returns the generated text, or
// FallbackText when the backend fails. Callers cannot tell the two apart
// except by content.
func (s *Service) GenerateText(ctx context.Context, prompt string) string {
	outcome := s.Generate(ctx, Request{Prompt: prompt})
	if outcome.Failed() {
		return s.config.FallbackText
	}
	return outcome.Text
}

// loggerFor prefers the request-scoped logger so failures carry the trace ID.
func (s *Service) loggerFor(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger).
		With("component", "generation", "backend", s.config.Backend)
}

func (s *Service) observe(outcome string, d time.Duration) {
	if s.observer != nil {
		s.observer.ObserveGeneration(s.config.Backend, outcome, d)
	}
}
