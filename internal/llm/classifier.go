package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
)

// Result is the outcome of a remote classification: an Intent on success,
// an error otherwise. It is never both.
type Result struct {
	Err    error
	Intent model.Intent
}

// OrFallback returns the remote intent, or the zero-confidence welcome
// intent when the remote path failed.
func (r Result) OrFallback() model.Intent {
	if r.Err != nil {
		return model.FallbackIntent(r.Intent.RawText)
	}
	return r.Intent
}

func failed(rawText string, err error) Result {
	return Result{Intent: model.Intent{RawText: rawText}, Err: err}
}

// Classifier wraps a provider Client with rate limiting, retries and caching.
type Classifier struct {
	client      Client
	cache       *intentCache
	rateLimiter *rateLimiter
	logger      *slog.Logger
	retryOpts   common.RetryOptions
	timeout     time.Duration
	closeOnce   sync.Once
}

// NewClassifier creates a remote classifier for the configured provider.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewClassifierWithClient(client, cfg, logger), nil
}

// NewClassifierWithClient builds a classifier around an existing client.
func NewClassifierWithClient(client Client, cfg Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = 500 * time.Millisecond
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Classifier{
		client:      client,
		cache:       newIntentCache(cfg.CacheTTL),
		rateLimiter: newRateLimiter(cfg.RateLimit),
		logger:      logger,
		retryOpts:   retryOpts,
		timeout:     timeout,
	}
}

// Classify asks the provider which module text belongs to.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return failed(text, fmt.Errorf("%w: empty input", ErrMalformedResponse))
	}

	if cached, ok := c.cache.get(key); ok {
		c.logger.Debug("remote classification cache hit", "module", cached.Module)
		cached.RawText = text
		return Result{Intent: cached}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var in model.Intent
	err := common.WithRetry(ctx, func() error {
		if err := c.rateLimiter.wait(ctx); err != nil {
			return common.Permanent(err)
		}

		content, err := c.client.Complete(ctx, SystemPrompt, text)
		if err != nil {
			return err
		}

		parsed, err := parseIntent(content, text)
		if err != nil {
			return common.Permanent(err)
		}
		in = parsed
		return nil
	}, c.retryOpts)
	if err != nil {
		c.logger.Warn("remote classification failed", "error", err)
		return failed(text, err)
	}

	c.cache.set(key, in)
	c.logger.Debug("remote classification",
		"module", in.Module,
		"confidence", in.Confidence)

	return Result{Intent: in}
}

// Close stops the background cache and rate limiter goroutines.
func (c *Classifier) Close() {
	c.closeOnce.Do(func() {
		c.cache.close()
		c.rateLimiter.close()
	})
}
