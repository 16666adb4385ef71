// Package intent turns free text into a dashboard module selection.
//
// Classification is a keyword vote: every rule whose keyword appears in the
// normalized text adds its weight to the rule's module, the highest total wins,
// and text that hits nothing lands on the welcome module.
package intent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

// ErrInvalidRule is returned when a keyword rule cannot be used for scoring.
var ErrInvalidRule = errors.New("invalid keyword rule")

// DefaultWeight is the score each keyword hit contributes in the built-in table.
const DefaultWeight = 0.9

// KeywordRule maps trigger keywords to a module.
type KeywordRule struct {
	Keywords []string
	Weight   float64
	Module   model.Module
}

// Validate ensures the rule can participate in classification.
func (r KeywordRule) Validate() error {
	if !r.Module.Valid() || r.Module == model.Welcome {
		return fmt.Errorf("%w: module %s cannot be a classification target", ErrInvalidRule, r.Module)
	}
	if r.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %.2f", ErrInvalidRule, r.Weight)
	}
	if len(r.Keywords) == 0 {
		return fmt.Errorf("%w: %s has no keywords", ErrInvalidRule, r.Module)
	}
	for _, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("%w: %s has an empty keyword", ErrInvalidRule, r.Module)
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("%w: keyword %q must be lowercase", ErrInvalidRule, kw)
		}
	}
	return nil
}

// DefaultRules returns the built-in keyword table.
// Declaration order is also the tie-break order: when two modules reach the
// same score, the one declared first wins.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Module: model.StudyPlanner,
			Weight: DefaultWeight,
			Keywords: []string{
				"study", "learn", "course", "exam", "homework",
				"assignment", "revision", "notes", "dsa", "algorithm",
				"web development", "coding", "programming", "schedule", "syllabus",
			},
		},
		{
			Module: model.ExpenseTracker,
			Weight: DefaultWeight,
			Keywords: []string{
				"expense", "money", "budget", "spending", "finance",
				"cost", "price", "purchase", "buy", "bought",
				"paid", "payment", "transaction", "track expense", "monthly expense",
			},
		},
		{
			Module: model.HabitTracker,
			Weight: DefaultWeight,
			Keywords: []string{
				"habit", "routine", "daily", "fitness", "exercise",
				"workout", "health", "gym", "run", "meditation",
				"yoga", "water", "sleep", "wake up", "morning",
			},
		},
		{
			Module: model.Analytics,
			Weight: DefaultWeight,
			Keywords: []string{
				"analytics", "stats", "statistics", "performance", "progress",
				"insights", "overview", "summary", "report", "trend",
				"productivity", "dashboard",
			},
		},
	}
}
