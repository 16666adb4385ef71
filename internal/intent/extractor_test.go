package intent

import (
	"testing"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractParameters(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   map[string]any
		module model.Module
	}{
		{
			name:   "study subject and hours",
			text:   "study dsa for 2 hours",
			module: model.StudyPlanner,
			want:   map[string]any{"subject": "dsa", "duration": 2, "unit": "hours"},
		},
		{
			name:   "study minutes without space",
			text:   "machine learning revision 45min",
			module: model.StudyPlanner,
			want:   map[string]any{"subject": "machine learning", "duration": 45, "unit": "min"},
		},
		{
			name:   "study hr abbreviation",
			text:   "review system design 1 hr",
			module: model.StudyPlanner,
			want:   map[string]any{"subject": "system design", "duration": 1, "unit": "hr"},
		},
		{
			name:   "study first subject in list order wins",
			text:   "networking then dsa",
			module: model.StudyPlanner,
			want:   map[string]any{"subject": "dsa"},
		},
		{
			name:   "study nothing to extract",
			text:   "plan my week",
			module: model.StudyPlanner,
			want:   map[string]any{},
		},
		{
			name:   "expense amount and category",
			text:   "bought lunch for $45.99 food",
			module: model.ExpenseTracker,
			want:   map[string]any{"amount": 45.99, "category": "food"},
		},
		{
			name:   "expense integer amount without currency",
			text:   "paid 20 for transport",
			module: model.ExpenseTracker,
			want:   map[string]any{"amount": 20.0, "category": "transport"},
		},
		{
			name:   "expense first amount wins",
			text:   "spent 12 then 30 on shopping",
			module: model.ExpenseTracker,
			want:   map[string]any{"amount": 12.0, "category": "shopping"},
		},
		{
			name:   "expense first category in list order wins",
			text:   "shopping and food",
			module: model.ExpenseTracker,
			want:   map[string]any{"category": "food"},
		},
		{
			name:   "habit type",
			text:   "30 min of meditation and yoga",
			module: model.HabitTracker,
			want:   map[string]any{"habitType": "meditation"},
		},
		{
			name:   "analytics has no parameters",
			text:   "report for 3 hours of dsa",
			module: model.Analytics,
			want:   map[string]any{},
		},
		{
			name:   "welcome has no parameters",
			text:   "hello $5 food",
			module: model.Welcome,
			want:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractParameters(tt.text, tt.module)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_ExtractsForWinningModuleOnly(t *testing.T) {
	got := Default().Classify("Study DSA for 2 hours")
	assert.Equal(t, model.StudyPlanner, got.Module)
	assert.Equal(t, map[string]any{"subject": "dsa", "duration": 2, "unit": "hours"}, got.Parameters)

	got = Default().Classify("Bought lunch for $45.99 food")
	assert.Equal(t, model.ExpenseTracker, got.Module)
	assert.Equal(t, map[string]any{"amount": 45.99, "category": "food"}, got.Parameters)
}

func TestMatchCategory(t *testing.T) {
	c, ok := MatchCategory("UBER TRANSPORT SERVICES")
	assert.True(t, ok)
	assert.Equal(t, "transport", c)

	_, ok = MatchCategory("AMAZON MKTPLACE")
	assert.False(t, ok)

	cats := ExpenseCategories()
	cats[0] = "changed"
	assert.Equal(t, "food", ExpenseCategories()[0])
}
