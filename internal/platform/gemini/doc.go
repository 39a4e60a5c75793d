// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API for generating marketing text.
//
// This package is an infrastructure adapter: it translates a prompt into a
// GenerateContent call with the marketing system instruction, and translates
// the response (or its absence) back into text or one of the generation
// package's sentinel errors:
//
//   - transport and API errors wrap generation.ErrUpstreamUnavailable
//   - responses without usable text wrap generation.ErrInvalidResponse
//   - prompts or candidates stopped by safety filters wrap generation.ErrContentBlocked
//
// The package depends on the google.golang.org/genai client library for
// authentication, request formatting and transport.
package gemini
