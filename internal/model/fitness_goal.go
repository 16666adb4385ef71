package model

import "time"

// FitnessGoalType names what a fitness goal measures.
type FitnessGoalType string

// Fitness goal types.
const (
	FitnessSteps   FitnessGoalType = "steps"
	FitnessWorkout FitnessGoalType = "workout"
	FitnessWater   FitnessGoalType = "water"
	FitnessSleep   FitnessGoalType = "sleep"
)

// Valid reports whether t is a known goal type.
func (t FitnessGoalType) Valid() bool {
	switch t {
	case FitnessSteps, FitnessWorkout, FitnessWater, FitnessSleep:
		return true
	}
	return false
}

// FitnessGoal is a daily numeric target.
type FitnessGoal struct {
	Date    time.Time       `json:"date"`
	ID      string          `json:"id"`
	Type    FitnessGoalType `json:"type"`
	Unit    string          `json:"unit"`
	Target  float64         `json:"target"`
	Current float64         `json:"current"`
}

// Percent returns progress toward the target as a rounded percentage.
func (g FitnessGoal) Percent() int {
	if g.Target == 0 {
		return 0
	}
	p := g.Current / g.Target * 100
	if p < 0 {
		return 0
	}
	return int(p + 0.5)
}

// FitnessGoalPatch carries the fields to change on a fitness goal.
type FitnessGoalPatch struct {
	Date    *time.Time
	Unit    *string
	Target  *float64
	Current *float64
}
