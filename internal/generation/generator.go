package generation

import (
	"context"
)

// Generator produces text for a single prompt. Implementations live under
// internal/platform and must be safe for concurrent use.
type Generator interface {
	// Generate returns the generated text, or an error wrapping one of the
	// sentinel errors in errors.go.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
