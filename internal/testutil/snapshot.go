package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

// ReferenceTime is the fixed "now" used by fixtures.
var ReferenceTime = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

// SnapshotBuilder assembles dashboard snapshots for tests.
// Records get sequential ids so assertions can name them.
type SnapshotBuilder struct {
	t    *testing.T
	snap model.Snapshot
	seq  int
}

// NewSnapshotBuilder starts an empty snapshot owned by "Tester".
func NewSnapshotBuilder(t *testing.T) *SnapshotBuilder {
	t.Helper()
	return &SnapshotBuilder{
		t: t,
		snap: model.Snapshot{
			Version:      model.SnapshotVersion,
			UserName:     "Tester",
			StudyTasks:   []model.StudyTask{},
			Expenses:     []model.Expense{},
			Habits:       []model.Habit{},
			FitnessGoals: []model.FitnessGoal{},
		},
	}
}

func (b *SnapshotBuilder) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

// WithUserName sets the user name.
func (b *SnapshotBuilder) WithUserName(name string) *SnapshotBuilder {
	b.snap.UserName = name
	return b
}

// WithStudyTask adds a study task created at ReferenceTime.
func (b *SnapshotBuilder) WithStudyTask(subject, topic string, minutes int, completed bool) *SnapshotBuilder {
	status := model.StatusPending
	if completed {
		status = model.StatusCompleted
	}
	b.snap.StudyTasks = append(b.snap.StudyTasks, model.StudyTask{
		ID:        b.nextID("task"),
		Subject:   subject,
		Topic:     topic,
		Duration:  minutes,
		Priority:  model.PriorityMedium,
		Status:    status,
		DueDate:   ReferenceTime.AddDate(0, 0, 7),
		CreatedAt: ReferenceTime,
	})
	return b
}

// WithExpense adds an expense dated daysAgo before ReferenceTime.
func (b *SnapshotBuilder) WithExpense(amount float64, category string, daysAgo int) *SnapshotBuilder {
	return b.withMoney(amount, category, model.ExpenseTypeExpense, daysAgo)
}

// WithIncome adds an income entry dated daysAgo before ReferenceTime.
func (b *SnapshotBuilder) WithIncome(amount float64, daysAgo int) *SnapshotBuilder {
	return b.withMoney(amount, model.CategoryOther, model.ExpenseTypeIncome, daysAgo)
}

func (b *SnapshotBuilder) withMoney(amount float64, category string, typ model.ExpenseType, daysAgo int) *SnapshotBuilder {
	b.snap.Expenses = append(b.snap.Expenses, model.Expense{
		ID:          b.nextID("expense"),
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("%s %.2f", category, amount),
		Type:        typ,
		Date:        ReferenceTime.AddDate(0, 0, -daysAgo),
	})
	return b
}

// WithHabit adds a daily habit completed on each of the given days before
// ReferenceTime. Streak fields are taken as given.
func (b *SnapshotBuilder) WithHabit(name string, currentStreak, longestStreak int, daysAgo ...int) *SnapshotBuilder {
	dates := make([]time.Time, 0, len(daysAgo))
	for _, d := range daysAgo {
		dates = append(dates, ReferenceTime.AddDate(0, 0, -d))
	}
	b.snap.Habits = append(b.snap.Habits, model.Habit{
		ID:             b.nextID("habit"),
		Name:           name,
		Frequency:      model.FrequencyDaily,
		TargetCount:    1,
		CompletedDates: dates,
		CurrentStreak:  currentStreak,
		LongestStreak:  longestStreak,
		CreatedAt:      ReferenceTime.AddDate(0, -1, 0),
	})
	return b
}

// WithFitnessGoal adds a goal for the reference day.
func (b *SnapshotBuilder) WithFitnessGoal(typ model.FitnessGoalType, target, current float64, unit string) *SnapshotBuilder {
	b.snap.FitnessGoals = append(b.snap.FitnessGoals, model.FitnessGoal{
		ID:      b.nextID("goal"),
		Type:    typ,
		Target:  target,
		Current: current,
		Unit:    unit,
		Date:    model.CalendarDay(ReferenceTime),
	})
	return b
}

// Build returns the assembled snapshot.
func (b *SnapshotBuilder) Build() model.Snapshot {
	b.t.Helper()
	return b.snap
}
