package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

func habitID(h model.Habit) string { return h.ID }

func validateHabit(h model.Habit) error {
	switch {
	case strings.TrimSpace(h.Name) == "":
		return fmt.Errorf("%w: habit name is required", ErrInvalidRecord)
	case !h.Frequency.Valid():
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecord, h.Frequency)
	case h.TargetCount < 1:
		return fmt.Errorf("%w: target count must be at least 1", ErrInvalidRecord)
	}
	return nil
}

// AddHabit stores a new habit with no completions. Frequency defaults to daily
// and target count to 1.
func (s *Store) AddHabit(ctx context.Context, h model.Habit) (model.Habit, error) {
	if h.Frequency == "" {
		h.Frequency = model.FrequencyDaily
	}
	if h.TargetCount == 0 {
		h.TargetCount = 1
	}
	if err := validateHabit(h); err != nil {
		return model.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h.ID = s.newID()
	h.CreatedAt = s.now()
	h.CompletedDates = []time.Time{}
	h.CurrentStreak = 0
	h.LongestStreak = 0
	s.state.Habits = append(s.state.Habits, h)
	return cloneHabit(h), s.persistLocked(ctx)
}

// UpdateHabit merges the non-nil patch fields into the habit with id.
// Completion history and streaks are only changed through CompleteHabit.
func (s *Store) UpdateHabit(ctx context.Context, id string, patch model.HabitPatch) (model.Habit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Habits, id, habitID)
	if i < 0 {
		return model.Habit{}, false, nil
	}

	h := cloneHabit(s.state.Habits[i])
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.Frequency != nil {
		h.Frequency = *patch.Frequency
	}
	if patch.Icon != nil {
		h.Icon = *patch.Icon
	}
	if patch.Color != nil {
		h.Color = *patch.Color
	}
	if patch.TargetCount != nil {
		h.TargetCount = *patch.TargetCount
	}
	if err := validateHabit(h); err != nil {
		return cloneHabit(s.state.Habits[i]), true, err
	}

	s.state.Habits[i] = h
	return cloneHabit(h), true, s.persistLocked(ctx)
}

// DeleteHabit removes the habit with id and reports whether it existed.
func (s *Store) DeleteHabit(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Habits, id, habitID)
	if i < 0 {
		return false, nil
	}
	s.state.Habits = append(s.state.Habits[:i], s.state.Habits[i+1:]...)
	return true, s.persistLocked(ctx)
}

// CompleteHabit records a completion on the calendar day of date and
// recomputes the streaks. A zero date means now. A second completion on a day
// that already has one is ignored and nothing is written.
func (s *Store) CompleteHabit(ctx context.Context, id string, date time.Time) (model.Habit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Habits, id, habitID)
	if i < 0 {
		return model.Habit{}, false, nil
	}
	if date.IsZero() {
		date = s.now()
	}

	h := cloneHabit(s.state.Habits[i])
	if h.CompletedOn(date) {
		return h, true, nil
	}

	h.CompletedDates = append(h.CompletedDates, date)
	h.CurrentStreak = CurrentStreak(h.CompletedDates)
	h.LongestStreak = max(h.LongestStreak, h.CurrentStreak)

	s.state.Habits[i] = h
	return cloneHabit(h), true, s.persistLocked(ctx)
}

// Habits returns every habit in creation order.
func (s *Store) Habits() []model.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Habit, len(s.state.Habits))
	for i, h := range s.state.Habits {
		out[i] = cloneHabit(h)
	}
	return out
}

// CurrentStreak counts the consecutive calendar days ending at the most recent
// completion. Several completions on one day count once.
func CurrentStreak(completed []time.Time) int {
	days := distinctDays(completed)
	if len(days) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if model.DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}

// distinctDays returns the calendar days in completed, most recent first.
func distinctDays(completed []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(completed))
	days := make([]time.Time, 0, len(completed))
	for _, t := range completed {
		d := model.CalendarDay(t)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}
