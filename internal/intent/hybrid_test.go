package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/lifedash/internal/llm"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
)

type stubRemote struct {
	result llm.Result
	calls  int
}

func (s *stubRemote) Classify(_ context.Context, text string) llm.Result {
	s.calls++
	res := s.result
	res.Intent.RawText = text
	return res
}

func TestHybrid_UsesRemoteWhenHealthy(t *testing.T) {
	remote := &stubRemote{result: llm.Result{Intent: model.Intent{
		Module:     model.Analytics,
		Confidence: 0.97,
		Parameters: map[string]any{"period": "week"},
	}}}
	h := NewHybrid(Default(), remote, nil)

	got := h.Classify(context.Background(), "how did I do")
	assert.Equal(t, model.Analytics, got.Module)
	assert.InDelta(t, 0.97, got.Confidence, 1e-9)
	assert.Equal(t, "week", got.Parameters["period"])
}

func TestHybrid_FillsMissingParameters(t *testing.T) {
	remote := &stubRemote{result: llm.Result{Intent: model.Intent{Module: model.ExpenseTracker, Confidence: 0.9}}}
	h := NewHybrid(Default(), remote, nil)

	got := h.Classify(context.Background(), "Lunch was $12.50, food")
	assert.Equal(t, map[string]any{"amount": 12.5, "category": "food"}, got.Parameters)
}

func TestHybrid_FallsBackToKeywords(t *testing.T) {
	remote := &stubRemote{result: llm.Result{Err: errors.New("connection refused")}}
	h := NewHybrid(Default(), remote, nil)

	got := h.Classify(context.Background(), "study dsa for 2 hours")
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, model.StudyPlanner, got.Module)
	assert.Equal(t, "dsa", got.Parameters["subject"])
}

func TestHybrid_SkipsRemoteForEmptyInput(t *testing.T) {
	remote := &stubRemote{}
	h := NewHybrid(nil, remote, nil)

	got := h.Classify(context.Background(), "  ")
	assert.Zero(t, remote.calls)
	assert.Equal(t, model.Welcome, got.Module)
}

func TestHybrid_NilRemote(t *testing.T) {
	h := NewHybrid(nil, nil, nil)
	assert.Equal(t, model.ExpenseTracker, h.Classify(context.Background(), "track expense").Module)
}
