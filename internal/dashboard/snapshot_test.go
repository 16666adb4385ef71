package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, _ := newTestStore()

	_, err := s.AddStudyTask(ctx, model.StudyTask{
		Subject:  "DSA",
		Topic:    "Dynamic programming",
		Duration: 120,
		Priority: model.PriorityHigh,
		DueDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, model.Expense{Amount: 45.99, Category: "food", Tags: []string{"lunch"}})
	require.NoError(t, err)

	h, err := s.AddHabit(ctx, model.Habit{Name: "Run", Color: "#22c55e"})
	require.NoError(t, err)
	est := time.FixedZone("EST", -5*60*60)
	for _, d := range []int{1, 2} {
		_, _, err = s.CompleteHabit(ctx, h.ID, time.Date(2024, 3, d, 23, 30, 0, 0, est))
		require.NoError(t, err)
	}
	require.NoError(t, s.SetUserName(ctx, "Ada"))
	return s
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	original := populatedStore(t).Snapshot()

	first, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded model.Snapshot
	require.NoError(t, json.Unmarshal(first, &decoded))

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("snapshot changed across JSON (-want +got):\n%s", diff)
	}

	reloaded := New(WithSnapshot(decoded)).Snapshot()
	second, err := json.Marshal(reloaded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSnapshot_RoundTripKeepsStreakDays(t *testing.T) {
	ctx := context.Background()
	raw, err := json.Marshal(populatedStore(t).Snapshot())
	require.NoError(t, err)

	var decoded model.Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	s, _ := newTestStore(WithSnapshot(decoded))
	h := s.Habits()[0]
	assert.Equal(t, 2, h.CurrentStreak)

	// 23:30 EST on March 2 is still March 2, not March 3 UTC.
	est := time.FixedZone("EST", -5*60*60)
	got, _, err := s.CompleteHabit(ctx, h.ID, time.Date(2024, 3, 2, 8, 0, 0, 0, est))
	require.NoError(t, err)
	assert.Len(t, got.CompletedDates, 2)

	got, _, err = s.CompleteHabit(ctx, h.ID, time.Date(2024, 3, 3, 8, 0, 0, 0, est))
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentStreak)
	assert.Equal(t, 3, got.LongestStreak)
}
