package intent

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

// ScoreTable holds the accumulated score per module for one classification.
type ScoreTable struct {
	scores map[model.Module]float64
	order  []model.Module
}

func newScoreTable() *ScoreTable {
	return &ScoreTable{scores: make(map[model.Module]float64)}
}

func (t *ScoreTable) add(m model.Module, score float64) {
	if _, seen := t.scores[m]; !seen {
		t.order = append(t.order, m)
	}
	t.scores[m] += score
}

// Score returns the accumulated score for a module.
func (t *ScoreTable) Score(m model.Module) float64 {
	return t.scores[m]
}

// Modules returns the modules that scored, in the order they first scored.
func (t *ScoreTable) Modules() []model.Module {
	out := make([]model.Module, len(t.order))
	copy(out, t.order)
	return out
}

// Best returns the strictly highest scoring module. Ties keep the module that
// scored first. With no scores the welcome module and zero are returned.
func (t *ScoreTable) Best() (model.Module, float64) {
	best, bestScore := model.Welcome, 0.0
	for _, m := range t.order {
		if s := t.scores[m]; s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, bestScore
}

// Classifier scores text against a fixed keyword table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules []KeywordRule
}

// NewClassifier validates the rules and builds a classifier over them.
func NewClassifier(rules []KeywordRule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules supplied", ErrInvalidRule)
	}

	owned := make([]KeywordRule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		owned[i] = KeywordRule{
			Module:   r.Module,
			Weight:   r.Weight,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}

	return &Classifier{rules: owned}, nil
}

// Default returns a classifier over the built-in keyword table.
func Default() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("built-in keyword rules are invalid: %v", err))
	}
	return c
}

// Normalize lowercases and trims text the way the classifier sees it.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Scores returns the per-module score table for text.
func (c *Classifier) Scores(text string) *ScoreTable {
	return c.score(Normalize(text))
}

func (c *Classifier) score(normalized string) *ScoreTable {
	table := newScoreTable()
	if normalized == "" {
		return table
	}

	for _, rule := range c.rules {
		var score float64
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				score += rule.Weight
			}
		}
		if score > 0 {
			table.add(rule.Module, score)
		}
	}
	return table
}

// Classify picks the module text most likely refers to.
// Empty or whitespace-only text yields the welcome module with zero confidence.
func (c *Classifier) Classify(text string) model.Intent {
	normalized := Normalize(text)

	words := len(strings.Fields(normalized))
	if words == 0 {
		return model.FallbackIntent(text)
	}

	module, score := c.score(normalized).Best()
	if score <= 0 {
		return model.FallbackIntent(text)
	}

	confidence := score / float64(words)
	if confidence > 1 {
		confidence = 1
	}

	return model.Intent{
		Module:     module,
		Confidence: confidence,
		Parameters: ExtractParameters(normalized, module),
		RawText:    text,
	}
}
