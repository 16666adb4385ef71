package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Veraticus/lifedash/internal/common"
)

const anthropicBaseURL = "https://api.anthropic.com"

// anthropicClient implements Client for the Anthropic messages API.
type anthropicClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

func newAnthropicClient(cfg Config) (*anthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key is required", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 200
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}

	return &anthropicClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  newHTTPClient(cfg.Timeout),
	}, nil
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Complete sends a messages request.
func (c *anthropicClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	requestBody := map[string]any{
		"model":       c.model,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
		"system":      systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": userText},
		},
	}

	var response anthropicResponse
	err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/messages",
		map[string]string{
			"x-api-key":         c.apiKey,
			"anthropic-version": "2023-06-01",
		},
		requestBody, &response)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	if len(response.Content) == 0 {
		return "", common.Permanent(fmt.Errorf("anthropic: %w: no content in response", ErrMalformedResponse))
	}

	return response.Content[0].Text, nil
}
