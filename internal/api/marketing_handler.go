package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/marketmind-relay/internal/api/shared"
	"github.com/phrazzld/marketmind-relay/internal/generation"
	"github.com/phrazzld/marketmind-relay/internal/platform/logger"
)

// GenerationService is the part of generation.Service the handler needs.
type GenerationService interface {
	Generate(ctx context.Context, req generation.Request) generation.Outcome
	MaskFailures() bool
	FallbackText() string
}

// MarketingHandler serves the /marketing routes.
type MarketingHandler struct {
	service GenerationService
	logger  *slog.Logger
}

// NewMarketingHandler creates a MarketingHandler. logger may be nil.
func NewMarketingHandler(service GenerationService, log *slog.Logger) *MarketingHandler {
	return &MarketingHandler{
		service: service,
		logger:  log,
	}
}

// Generate handles POST /marketing/generate.
//
// Only application/json bodies are parsed. A missing or falsy prompt is
// rejected with 400 before any outbound call.
// Backend failures are answered with the fallback text and 200 when masking
// is enabled, otherwise with a mapped error status.
func (h *MarketingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if shared.HasJSONBody(r) {
		if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, MsgBodyTooLarge, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
			return
		}
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("generation requested",
		"prompt_length", len(req.Prompt),
		"has_target_audience", req.TargetAudience != "",
		"has_product_features", req.ProductFeatures != "")

	outcome := h.service.Generate(r.Context(), req.toDomain())
	if !outcome.Failed() {
		shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Result: outcome.Text})
		return
	}

	if errors.Is(outcome.Err, generation.ErrEmptyPrompt) {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgPromptRequired)
		return
	}

	if h.service.MaskFailures() {
		shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Result: outcome.Text})
		return
	}

	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(outcome.Err),
		GetSafeErrorMessage(outcome.Err, h.service.FallbackText()),
		outcome.Err)
}
