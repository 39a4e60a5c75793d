package generation

import "errors"

// Common errors returned by the generation package and its backends
var (
	// ErrEmptyPrompt is returned when a request carries no prompt text
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrUpstreamUnavailable is returned when the backend cannot be reached or
	// answers with a non-success status
	ErrUpstreamUnavailable = errors.New("generation service unavailable")

	// ErrInvalidResponse is returned when the backend response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from generation service")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
