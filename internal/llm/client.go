package llm

import (
	"context"
	"time"
)

// Client sends one classification request to a completion provider and
// returns the raw text of the reply.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Config holds provider settings.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	MaxRetries  int
	RateLimit   int
	MaxTokens   int
	Temperature float64
}
