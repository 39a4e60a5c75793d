package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/phrazzld/marketmind-relay/internal/generation"
)

// Maximum length accepted for the optional prompt hints. Must match the
// max= value in the GenerateRequest validate tags.
const maxHintLength = 1000

var errPromptNotString = errors.New("prompt must be a string")

// PromptField is a prompt decoded from JSON. Falsy values (null, false, 0
// and "") decode to the empty prompt so they are reported as missing;
// any other non-string value is a format error.
type PromptField string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PromptField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false":
		*p = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PromptField(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil && n == 0 {
		*p = ""
		return nil
	}
	return errPromptNotString
}

// GenerateRequest defines the payload for the marketing generate endpoint.
type GenerateRequest struct {
	Prompt PromptField `json:"prompt" validate:"required"`

	// TargetAudience and ProductFeatures are folded into the prompt when set.
	TargetAudience  string `json:"target_audience,omitempty"  validate:"omitempty,max=1000"`
	ProductFeatures string `json:"product_features,omitempty" validate:"omitempty,max=1000"`
}

// toDomain converts the payload into a generation request.
func (r GenerateRequest) toDomain() generation.Request {
	return generation.Request{
		Prompt:          string(r.Prompt),
		TargetAudience:  r.TargetAudience,
		ProductFeatures: r.ProductFeatures,
	}
}

// GenerateResponse is returned for successful (or masked) generations.
type GenerateResponse struct {
	Result string `json:"result"`
}
