// Package analytics derives productivity metrics and reports from a dashboard snapshot.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

// Score caps for each productivity component.
const (
	maxTaskScore  = 40
	maxStudyScore = 30
	taskPoints    = 10
	studyPoints   = 3
	habitWeight   = 0.3
)

// categoryOrder fixes the display order of the built-in expense categories.
var categoryOrder = []string{
	"food", "transport", "entertainment", "utilities", "shopping", "healthcare", model.CategoryOther,
}

// CategoryTotal is the money spent in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DayActivity counts what happened on one calendar day.
type DayActivity struct {
	Date             time.Time `json:"date"`
	StudyTasks       int       `json:"studyTasks"`
	HabitCompletions int       `json:"habitCompletions"`
}

// Label is the short weekday name, e.g. "Mon".
func (d DayActivity) Label() string {
	return d.Date.Format("Mon")
}

// Metrics computes the headline numbers for a snapshot.
func Metrics(snap model.Snapshot) model.ProductivityMetrics {
	var m model.ProductivityMetrics

	completedMinutes := 0
	for _, t := range snap.StudyTasks {
		if t.Status == model.StatusCompleted {
			m.CompletedTasks++
			completedMinutes += t.Duration
		}
	}
	m.TotalStudyHours = float64(completedMinutes) / 60

	for _, e := range snap.Expenses {
		switch e.Type {
		case model.ExpenseTypeExpense:
			m.TotalExpenses += e.Amount
		case model.ExpenseTypeIncome:
			m.TotalIncome += e.Amount
		}
	}

	if len(snap.Habits) > 0 {
		total := 0
		for _, h := range snap.Habits {
			total += h.CurrentStreak
		}
		m.HabitCompletionRate = float64(total) / float64(len(snap.Habits))
	}

	m.ProductivityScore = Score(m.CompletedTasks, m.TotalStudyHours, m.HabitCompletionRate)
	return m
}

// Score combines completed tasks, study hours and habit rate into a 0-100ish score.
// Tasks and hours are capped; the habit component is not.
func Score(completedTasks int, studyHours, habitRate float64) int {
	taskScore := math.Min(float64(completedTasks*taskPoints), maxTaskScore)
	studyScore := math.Min(studyHours*studyPoints, maxStudyScore)
	return int(math.Round(taskScore + studyScore + habitRate*habitWeight))
}

// Verdict is the one-line encouragement shown next to a score.
func Verdict(score int) string {
	switch {
	case score >= 80:
		return "🎉 Outstanding performance!"
	case score >= 60:
		return "💪 Great work, keep it up!"
	case score >= 40:
		return "📈 You're making progress!"
	default:
		return "🌱 Start small, build momentum!"
	}
}

// ExpenseBreakdown totals expense-type entries by category. Categories with
// nothing spent are omitted. Built-in categories come first in their fixed
// order, then any others alphabetically.
func ExpenseBreakdown(expenses []model.Expense) []CategoryTotal {
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.Type != model.ExpenseTypeExpense {
			continue
		}
		totals[e.Category] += e.Amount
	}

	rank := make(map[string]int, len(categoryOrder))
	for i, c := range categoryOrder {
		rank[c] = i
	}

	out := make([]CategoryTotal, 0, len(totals))
	for c, amount := range totals {
		if amount > 0 {
			out = append(out, CategoryTotal{Category: c, Amount: amount})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, iKnown := rank[out[i].Category]
		rj, jKnown := rank[out[j].Category]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i].Category < out[j].Category
		}
	})
	return out
}

// WeeklyActivity returns the seven calendar days ending on now's day, oldest first.
func WeeklyActivity(snap model.Snapshot, now time.Time) []DayActivity {
	today := model.CalendarDay(now)
	days := make([]DayActivity, 7)
	index := make(map[time.Time]int, 7)
	for i := range days {
		d := today.AddDate(0, 0, i-6)
		days[i].Date = d
		index[d] = i
	}

	for _, t := range snap.StudyTasks {
		if i, ok := index[model.CalendarDay(t.CreatedAt)]; ok {
			days[i].StudyTasks++
		}
	}
	for _, h := range snap.Habits {
		seen := make(map[time.Time]bool)
		for _, c := range h.CompletedDates {
			d := model.CalendarDay(c)
			if seen[d] {
				continue
			}
			seen[d] = true
			if i, ok := index[d]; ok {
				days[i].HabitCompletions++
			}
		}
	}
	return days
}
