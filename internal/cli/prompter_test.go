package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectError error
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "full yes mixed case", input: "YES\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty means no", input: "\n", expected: false},
		{name: "invalid then yes", input: "maybe\ny\n", expected: true},
		{name: "input ends", input: "", expectError: ErrInputTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &output)

			got, err := p.Confirm(context.Background(), "Reset everything?")

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, output.String(), "Reset everything? [y/N]")
		})
	}
}

func TestPrompter_ConfirmInvalidChoiceMessage(t *testing.T) {
	var output bytes.Buffer
	p := NewPrompter(strings.NewReader("what\nn\n"), &output)

	_, err := p.Confirm(context.Background(), "Continue?")
	require.NoError(t, err)
	assert.Contains(t, output.String(), "Invalid choice. Please try again.")
}

func TestPrompter_ConfirmCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("y\n"), &bytes.Buffer{})
	_, err := p.Confirm(ctx, "Continue?")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_Ask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      string
		expected string
	}{
		{name: "typed answer", input: "Alex\n", def: "User", expected: "Alex"},
		{name: "empty uses default", input: "\n", def: "User", expected: "User"},
		{name: "empty without default", input: "\n", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})

			got, err := p.Ask(context.Background(), "Name", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPrompter_ReviewExpense(t *testing.T) {
	imported := model.Expense{
		Date:        time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
		Category:    "food",
		Description: "Whole Foods Market",
		Type:        model.ExpenseTypeExpense,
		Amount:      125,
	}

	tests := []struct {
		name             string
		input            string
		expectedKeep     bool
		expectedCategory string
	}{
		{name: "keep category", input: "a\n", expectedKeep: true, expectedCategory: "food"},
		{name: "change category", input: "c\nShopping\n", expectedKeep: true, expectedCategory: "shopping"},
		{name: "change category keeps default", input: "c\n\n", expectedKeep: true, expectedCategory: "food"},
		{name: "skip", input: "s\n", expectedKeep: false, expectedCategory: "food"},
		{name: "invalid then keep", input: "x\na\n", expectedKeep: true, expectedCategory: "food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &output)

			got, keep, err := p.ReviewExpense(context.Background(), imported)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKeep, keep)
			assert.Equal(t, tt.expectedCategory, got.Category)
			assert.Contains(t, output.String(), "Whole Foods Market")
			assert.Contains(t, output.String(), "-$125.00")
		})
	}
}

func TestPrompter_ReviewSummary(t *testing.T) {
	var output bytes.Buffer
	p := NewPrompter(strings.NewReader("a\ns\na\n"), &output)
	ctx := context.Background()

	p.StartReview(3)
	for i := 0; i < 3; i++ {
		_, _, err := p.ReviewExpense(ctx, model.Expense{Description: "coffee", Category: "food", Amount: 3})
		require.NoError(t, err)
	}
	p.FinishReview()

	assert.Contains(t, output.String(), "Kept 2, skipped 1")
}

func TestProgress(t *testing.T) {
	var output bytes.Buffer
	progress := NewProgress(&output, 4, "Importing...")

	progress.Add(2)
	progress.Add(2)
	progress.Finish()

	assert.Contains(t, output.String(), "Importing...")
	assert.Contains(t, output.String(), "4/4")
}
