package model

import "time"

// Frequency is how often a habit is meant to be performed.
type Frequency string

// Habit frequencies.
const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Habit is a recurring activity with completion history.
type Habit struct {
	CreatedAt      time.Time   `json:"createdAt"`
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	Frequency      Frequency   `json:"frequency"`
	Icon           string      `json:"icon,omitempty"`
	Color          string      `json:"color,omitempty"`
	CompletedDates []time.Time `json:"completedDates"`
	TargetCount    int         `json:"targetCount"`
	CurrentStreak  int         `json:"currentStreak"`
	LongestStreak  int         `json:"longestStreak"`
}

// CompletedOn reports whether the habit has a completion on the calendar day of t.
func (h Habit) CompletedOn(t time.Time) bool {
	day := CalendarDay(t)
	for _, d := range h.CompletedDates {
		if CalendarDay(d).Equal(day) {
			return true
		}
	}
	return false
}

// HabitPatch carries the fields to change on a habit.
type HabitPatch struct {
	Name        *string
	Description *string
	Frequency   *Frequency
	Icon        *string
	Color       *string
	TargetCount *int
}

// CalendarDay maps t to midnight UTC of the calendar day t falls on in its own location.
// Two instants on the same wall-clock date compare equal regardless of time of day.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from b to a.
func DaysBetween(a, b time.Time) int {
	return int(CalendarDay(a).Sub(CalendarDay(b)).Hours() / 24)
}
