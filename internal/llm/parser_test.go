package llm

import (
	"testing"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		wantModule     model.Module
		wantConfidence float64
		wantParams     map[string]any
		wantErr        bool
	}{
		{
			name:           "plain json",
			content:        `{"module":"expenseTracker","confidence":0.92,"parameters":{"amount":12.5},"reasoning":"money"}`,
			wantModule:     model.ExpenseTracker,
			wantConfidence: 0.92,
			wantParams:     map[string]any{"amount": 12.5},
		},
		{
			name:           "markdown fenced",
			content:        "```json\n{\"module\":\"habitTracker\",\"confidence\":0.7}\n```",
			wantModule:     model.HabitTracker,
			wantConfidence: 0.7,
			wantParams:     map[string]any{},
		},
		{
			name:           "missing confidence uses default",
			content:        `{"module":"analytics"}`,
			wantModule:     model.Analytics,
			wantConfidence: 0.8,
			wantParams:     map[string]any{},
		},
		{
			name:           "confidence clamped",
			content:        `{"module":"studyPlanner","confidence":3}`,
			wantModule:     model.StudyPlanner,
			wantConfidence: 1,
			wantParams:     map[string]any{},
		},
		{
			name:    "unknown module",
			content: `{"module":"calendar","confidence":0.9}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "I think this is about studying",
			wantErr: true,
		},
		{
			name:    "empty",
			content: "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIntent(tt.content, "raw text")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModule, got.Module)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.Equal(t, tt.wantParams, got.Parameters)
			assert.Equal(t, "raw text", got.RawText)
		})
	}
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("  {\"a\":1}  "))
}
