package intent

import (
	"strings"
	"testing"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_SingleModule(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		input string
		want  model.Module
	}{
		{name: "study", input: "Prepare for my exam", want: model.StudyPlanner},
		{name: "expense", input: "I paid the electricity bill", want: model.ExpenseTracker},
		{name: "habit", input: "start a yoga habit", want: model.HabitTracker},
		{name: "analytics", input: "give me a weekly summary", want: model.Analytics},
		{name: "multi-word keyword", input: "I want to get into web development", want: model.StudyPlanner},
		{name: "substring match", input: "went running today", want: model.HabitTracker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			assert.Equal(t, tt.want, got.Module)
			assert.Greater(t, got.Confidence, 0.0)
			assert.LessOrEqual(t, got.Confidence, 1.0)
			assert.Equal(t, tt.input, got.RawText)
			assert.NotNil(t, got.Parameters)
		})
	}
}

func TestClassifier_EmptyInput(t *testing.T) {
	c := Default()

	for _, input := range []string{"", "   ", "\t\n "} {
		got := c.Classify(input)
		assert.Equal(t, model.Welcome, got.Module, "input %q", input)
		assert.Zero(t, got.Confidence, "input %q", input)
		assert.Empty(t, got.Parameters)
		assert.Equal(t, input, got.RawText)
	}
}

func TestClassifier_NoMatchIsWelcome(t *testing.T) {
	got := Default().Classify("hello there")
	assert.Equal(t, model.Welcome, got.Module)
	assert.Zero(t, got.Confidence)
}

func TestClassifier_HigherScoreWins(t *testing.T) {
	// daily + workout (habit) outweighs expense.
	got := Default().Classify("log my daily workout and expense")
	assert.Equal(t, model.HabitTracker, got.Module)

	table := Default().Scores("log my daily workout and expense")
	assert.InDelta(t, 1.8, table.Score(model.HabitTracker), 1e-9)
	assert.InDelta(t, 0.9, table.Score(model.ExpenseTracker), 1e-9)
}

func TestClassifier_TieKeepsFirstDeclared(t *testing.T) {
	// Built-in order: studyPlanner, expenseTracker, habitTracker, analytics.
	got := Default().Classify("money for my homework")
	assert.Equal(t, model.StudyPlanner, got.Module)

	got = Default().Classify("budget study")
	assert.Equal(t, model.StudyPlanner, got.Module)

	// Reordering the rules changes the winner of a tie.
	rules := DefaultRules()
	rules[0], rules[1] = rules[1], rules[0]
	c, err := NewClassifier(rules)
	require.NoError(t, err)
	assert.Equal(t, model.ExpenseTracker, c.Classify("money for my homework").Module)
}

func TestClassifier_Confidence(t *testing.T) {
	c := Default()

	// "study" and "dsa" hit: 1.8 over five words.
	got := c.Classify("study dsa for 2 hours")
	assert.InDelta(t, 1.8/5, got.Confidence, 1e-9)

	// Many keywords in one word are clamped.
	got = c.Classify("studyexamcoursehomework")
	assert.Equal(t, model.StudyPlanner, got.Module)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)

	// Repeated spaces do not inflate the word count: 1.8 over two words.
	text := "  study     notes  "
	got = c.Classify(text)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.Greater(t, got.Confidence, 1.8/float64(len(strings.Split(text, " "))))
}

func TestClassifier_ConfidenceAlwaysInRange(t *testing.T) {
	c := Default()
	inputs := []string{
		"", "x", "run", "gym gym gym", "study learn course exam homework assignment",
		"$$$ 1000000", "analytics stats statistics performance progress insights overview summary report trend productivity dashboard",
		"I bought a course on yoga to track my sleep progress",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, in)
		assert.LessOrEqual(t, got.Confidence, 1.0, in)
		if got.Module == model.Welcome {
			assert.Zero(t, got.Confidence, in)
		}
	}
}

func TestClassifier_RulesAccumulatePerModule(t *testing.T) {
	c, err := NewClassifier([]KeywordRule{
		{Module: model.ExpenseTracker, Weight: 1, Keywords: []string{"coffee"}},
		{Module: model.HabitTracker, Weight: 1.5, Keywords: []string{"coffee"}},
		{Module: model.ExpenseTracker, Weight: 1, Keywords: []string{"latte"}},
	})
	require.NoError(t, err)

	table := c.Scores("coffee latte")
	assert.Equal(t, []model.Module{model.ExpenseTracker, model.HabitTracker}, table.Modules())
	assert.InDelta(t, 2.0, table.Score(model.ExpenseTracker), 1e-9)

	best, score := table.Best()
	assert.Equal(t, model.ExpenseTracker, best)
	assert.InDelta(t, 2.0, score, 1e-9)
}

func TestNewClassifier_Validation(t *testing.T) {
	tests := []struct {
		name  string
		rules []KeywordRule
	}{
		{name: "no rules", rules: nil},
		{name: "welcome target", rules: []KeywordRule{{Module: model.Welcome, Weight: 1, Keywords: []string{"hi"}}}},
		{name: "invalid module", rules: []KeywordRule{{Module: model.Module(77), Weight: 1, Keywords: []string{"hi"}}}},
		{name: "zero weight", rules: []KeywordRule{{Module: model.Analytics, Weight: 0, Keywords: []string{"hi"}}}},
		{name: "no keywords", rules: []KeywordRule{{Module: model.Analytics, Weight: 1}}},
		{name: "blank keyword", rules: []KeywordRule{{Module: model.Analytics, Weight: 1, Keywords: []string{" "}}}},
		{name: "uppercase keyword", rules: []KeywordRule{{Module: model.Analytics, Weight: 1, Keywords: []string{"Stats"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.rules)
			require.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestNewClassifier_CopiesRules(t *testing.T) {
	rules := []KeywordRule{{Module: model.Analytics, Weight: 1, Keywords: []string{"stats"}}}
	c, err := NewClassifier(rules)
	require.NoError(t, err)

	rules[0].Keywords[0] = "zzz"
	assert.Equal(t, model.Analytics, c.Classify("show stats").Module)
}
