package generation

import (
	"fmt"
	"strings"
)

// Request is the transient payload passed from the front door to a backend.
// It is created per call and never stored.
type Request struct {
	Prompt          string
	TargetAudience  string
	ProductFeatures string
}

// Validate reports ErrEmptyPrompt when the prompt is missing.
// Whitespace-only prompts are accepted and forwarded as-is.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// Text returns the prompt sent to the backend. Without audience or feature
// hints the prompt is forwarded verbatim; otherwise it is wrapped in the
// slogan instruction used by the marketing model.
func (r Request) Text() string {
	audience := strings.TrimSpace(r.TargetAudience)
	features := strings.TrimSpace(r.ProductFeatures)
	if audience == "" && features == "" {
		return r.Prompt
	}

	var b strings.Builder
	b.WriteString("Generate a catchy marketing slogan for our product. ")
	fmt.Fprintf(&b, "Prompt: %s.", r.Prompt)
	if audience != "" {
		fmt.Fprintf(&b, " Target Audience: %s.", audience)
	}
	if features != "" {
		fmt.Fprintf(&b, " Product Features: %s.", features)
	}
	return b.String()
}
