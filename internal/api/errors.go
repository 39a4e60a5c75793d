package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/marketmind-relay/internal/generation"
)

// Client-facing messages. The first two are part of the public contract.
const (
	MsgPromptRequired  = "Prompt is required"
	MsgInvalidRequest  = "Invalid request format"
	MsgBodyTooLarge    = "Request body too large"
	MsgContentBlocked  = "Content blocked by safety filters"
	MsgUnexpectedError = "An unexpected error occurred"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes. Only used
// when failures are not masked.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrUpstreamUnavailable),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, context.Canceled):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message exposed to clients for err.
// Downstream failures use fallback so the body matches the masked result text.
func GetSafeErrorMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return MsgUnexpectedError
	case errors.Is(err, generation.ErrEmptyPrompt):
		return MsgPromptRequired
	case errors.Is(err, generation.ErrContentBlocked):
		return MsgContentBlocked
	case errors.Is(err, generation.ErrUpstreamUnavailable),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fallback
	default:
		return MsgUnexpectedError
	}
}

// validationMessage picks the client message for a failed request validation.
// A missing prompt has its own message; every other rule is a format error.
func validationMessage(err error) string {
	if errors.Is(err, generation.ErrEmptyPrompt) {
		return MsgPromptRequired
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Prompt" {
				return MsgPromptRequired
			}
		}
	}
	return MsgInvalidRequest
}
