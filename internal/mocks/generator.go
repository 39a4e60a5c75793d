package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/marketmind-relay/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn overrides Text and Err when set.
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Generate implements generation.Generator.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// Calls returns how many times Generate was called.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt passed to Generate, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Reset clears the call tracking state.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
}

// NewMockGeneratorWithText creates a MockGenerator that returns text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails simulates an unreachable upstream.
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{
		Err: fmt.Errorf("%w: dial tcp 127.0.0.1:8000: connect: connection refused", generation.ErrUpstreamUnavailable),
	}
}

// MockGeneratorWithInvalidResponse simulates an upstream reply without text.
func MockGeneratorWithInvalidResponse() *MockGenerator {
	return &MockGenerator{
		Err: fmt.Errorf("%w: missing generated_text", generation.ErrInvalidResponse),
	}
}

// MockGeneratorWithContentBlocked simulates content being blocked.
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: fmt.Errorf("%w: finish reason SAFETY", generation.ErrContentBlocked),
	}
}
