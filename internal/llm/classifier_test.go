package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	err     error
	reply   string
	calls   int
	prompts []string
	mu      sync.Mutex
}

func (s *stubClient) Complete(_ context.Context, systemPrompt, userText string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.prompts = append(s.prompts, systemPrompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestClassifier(t *testing.T, client Client) *Classifier {
	t.Helper()
	c := NewClassifierWithClient(client, Config{
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
		RateLimit:  1000,
		Timeout:    time.Second,
	}, nil)
	t.Cleanup(c.Close)
	return c
}

func TestClassifier_Success(t *testing.T) {
	stub := &stubClient{reply: `{"module":"studyPlanner","confidence":0.95,"parameters":{"subject":"dsa"}}`}
	c := newTestClassifier(t, stub)

	res := c.Classify(context.Background(), "Plan my DSA revision")
	require.NoError(t, res.Err)
	assert.Equal(t, model.StudyPlanner, res.Intent.Module)
	assert.InDelta(t, 0.95, res.Intent.Confidence, 1e-9)
	assert.Equal(t, "dsa", res.Intent.Parameters["subject"])
	assert.Equal(t, "Plan my DSA revision", res.Intent.RawText)
	assert.Equal(t, res.Intent, res.OrFallback())
	assert.Equal(t, SystemPrompt, stub.prompts[0])
}

func TestClassifier_CachesByNormalizedText(t *testing.T) {
	stub := &stubClient{reply: `{"module":"analytics","confidence":0.9}`}
	c := newTestClassifier(t, stub)

	first := c.Classify(context.Background(), "Show my stats")
	second := c.Classify(context.Background(), "  show my STATS ")
	require.NoError(t, first.Err)
	require.NoError(t, second.Err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "  show my STATS ", second.Intent.RawText)
	assert.Equal(t, 1, c.cache.size())
}

func TestClassifier_CachedParametersAreCopied(t *testing.T) {
	stub := &stubClient{reply: `{"module":"studyPlanner","confidence":0.9,"parameters":{"subject":"dsa"}}`}
	c := newTestClassifier(t, stub)

	first := c.Classify(context.Background(), "plan dsa")
	require.NoError(t, first.Err)
	first.Intent.Parameters["subject"] = "mutated"

	second := c.Classify(context.Background(), "plan dsa")
	require.NoError(t, second.Err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "dsa", second.Intent.Parameters["subject"])

	second.Intent.Parameters["subject"] = "again"
	third := c.Classify(context.Background(), "plan dsa")
	assert.Equal(t, "dsa", third.Intent.Parameters["subject"])
}

func TestClassifier_FailuresFallBack(t *testing.T) {
	tests := []struct {
		name      string
		client    *stubClient
		wantCalls int
	}{
		{
			name:      "network error is retried",
			client:    &stubClient{err: &common.RetryableError{Err: common.ErrRemoteUnavailable, Retryable: true}},
			wantCalls: 2,
		},
		{
			name:      "permanent error is not retried",
			client:    &stubClient{err: common.Permanent(errors.New("401 unauthorized"))},
			wantCalls: 1,
		},
		{
			name:      "malformed body",
			client:    &stubClient{reply: "not json at all"},
			wantCalls: 1,
		},
		{
			name:      "unknown module",
			client:    &stubClient{reply: `{"module":"weather"}`},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClassifier(t, tt.client)

			res := c.Classify(context.Background(), "bought coffee")
			require.Error(t, res.Err)
			assert.Equal(t, tt.wantCalls, tt.client.calls)

			fb := res.OrFallback()
			assert.Equal(t, model.Welcome, fb.Module)
			assert.Zero(t, fb.Confidence)
			assert.Empty(t, fb.Parameters)
			assert.Equal(t, "bought coffee", fb.RawText)
		})
	}
}

func TestClassifier_EmptyInput(t *testing.T) {
	stub := &stubClient{reply: `{"module":"analytics"}`}
	c := newTestClassifier(t, stub)

	res := c.Classify(context.Background(), "   ")
	require.Error(t, res.Err)
	assert.Zero(t, stub.calls)
	assert.Equal(t, model.Welcome, res.OrFallback().Module)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(Config{Provider: "openai", APIKey: "k"})
	require.NoError(t, err)
	_, err = NewClient(Config{Provider: "Anthropic", APIKey: "k"})
	require.NoError(t, err)
	_, err = NewClient(Config{Provider: "openai"})
	require.ErrorIs(t, err, common.ErrMissingConfig)
	_, err = NewClient(Config{Provider: "ollama", APIKey: "k"})
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}
