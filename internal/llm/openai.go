package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Veraticus/lifedash/internal/common"
)

const openAIBaseURL = "https://api.openai.com"

// openAIClient implements Client for the OpenAI chat completions API.
type openAIClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

func newOpenAIClient(cfg Config) (*openAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key is required", common.ErrMissingConfig)
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-3.5-turbo"
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
		baseURL = openAIBaseURL
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  newHTTPClient(cfg.Timeout),
	}, nil
}

// openAIResponse represents the OpenAI API response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}

// Complete sends a JSON-mode chat completion request.
func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userText},
		},
		"temperature":     c.temperature,
		"max_tokens":      c.maxTokens,
		"response_format": map[string]string{"type": "json_object"},
	}

	var response openAIResponse
	err := postJSON(ctx, c.httpClient, c.baseURL+"/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + c.apiKey},
		requestBody, &response)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", common.Permanent(fmt.Errorf("openai: %w: no completion choices returned", ErrMalformedResponse))
	}

	return response.Choices[0].Message.Content, nil
}
