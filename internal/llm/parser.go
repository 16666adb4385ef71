package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

// ErrMalformedResponse is returned when a provider reply cannot be read as an intent.
var ErrMalformedResponse = errors.New("malformed classification response")

// defaultConfidence is used when the reply omits a confidence value.
const defaultConfidence = 0.8

// cleanMarkdownWrapper strips ```json fences that models like to add.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```JSON")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseIntent converts a provider reply into an Intent for rawText.
func parseIntent(content, rawText string) (model.Intent, error) {
	var reply struct {
		Confidence *float64       `json:"confidence"`
		Parameters map[string]any `json:"parameters"`
		Module     string         `json:"module"`
		Reasoning  string         `json:"reasoning"`
	}

	content = cleanMarkdownWrapper(content)
	if content == "" {
		return model.Intent{}, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	module, err := model.ParseModule(strings.TrimSpace(reply.Module))
	if err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	confidence := defaultConfidence
	if reply.Confidence != nil {
		confidence = *reply.Confidence
	}
	switch {
	case confidence < 0:
		confidence = 0
	case confidence > 1:
		confidence = 1
	}

	params := reply.Parameters
	if params == nil {
		params = map[string]any{}
	}

	return model.Intent{
		Module:     module,
		Confidence: confidence,
		Parameters: params,
		RawText:    rawText,
	}, nil
}
