package analytics

import (
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

// FitnessProgress is one fitness goal with its completion percentage.
type FitnessProgress struct {
	Type    model.FitnessGoalType `json:"type"`
	Unit    string                `json:"unit"`
	Current float64               `json:"current"`
	Target  float64               `json:"target"`
	Percent int                   `json:"percent"`
}

// Report bundles everything the analytics view shows.
type Report struct {
	GeneratedAt  time.Time                 `json:"generatedAt"`
	UserName     string                    `json:"userName"`
	Breakdown    []CategoryTotal           `json:"breakdown"`
	Weekly       []DayActivity             `json:"weekly"`
	Fitness      []FitnessProgress         `json:"fitness"`
	Metrics      model.ProductivityMetrics `json:"metrics"`
	ActiveHabits int                       `json:"activeHabits"`
	PendingTasks int                       `json:"pendingTasks"`
}

// BuildReport computes a full report for snap as of now.
func BuildReport(snap model.Snapshot, now time.Time) Report {
	r := Report{
		GeneratedAt: now,
		UserName:    snap.UserName,
		Metrics:     Metrics(snap),
		Breakdown:   ExpenseBreakdown(snap.Expenses),
		Weekly:      WeeklyActivity(snap, now),
		Fitness:     make([]FitnessProgress, 0, len(snap.FitnessGoals)),
	}

	for _, t := range snap.StudyTasks {
		if t.Status != model.StatusCompleted {
			r.PendingTasks++
		}
	}
	for _, h := range snap.Habits {
		if h.CurrentStreak > 0 {
			r.ActiveHabits++
		}
	}
	for _, g := range snap.FitnessGoals {
		r.Fitness = append(r.Fitness, FitnessProgress{
			Type:    g.Type,
			Unit:    g.Unit,
			Current: g.Current,
			Target:  g.Target,
			Percent: g.Percent(),
		})
	}
	return r
}
