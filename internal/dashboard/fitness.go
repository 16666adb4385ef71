package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/Veraticus/lifedash/internal/model"
)

func fitnessGoalID(g model.FitnessGoal) string { return g.ID }

func validQuantity(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validateFitnessGoal(g model.FitnessGoal) error {
	switch {
	case !g.Type.Valid():
		return fmt.Errorf("%w: unknown fitness goal type %q", ErrInvalidRecord, g.Type)
	case !validQuantity(g.Target) || g.Target == 0:
		return fmt.Errorf("%w: target must be a positive number, got %v", ErrInvalidRecord, g.Target)
	case !validQuantity(g.Current):
		return fmt.Errorf("%w: progress cannot be negative, got %v", ErrInvalidRecord, g.Current)
	}
	return nil
}

// defaultUnit is the unit shown for a goal type when none is given.
func defaultUnit(t model.FitnessGoalType) string {
	switch t {
	case model.FitnessSteps:
		return "steps"
	case model.FitnessWater:
		return "glasses"
	case model.FitnessSleep:
		return "hours"
	case model.FitnessWorkout:
		return "minutes"
	}
	return ""
}

// AddFitnessGoal stores a new goal. Date defaults to today.
func (s *Store) AddFitnessGoal(ctx context.Context, g model.FitnessGoal) (model.FitnessGoal, error) {
	if g.Unit == "" {
		g.Unit = defaultUnit(g.Type)
	}
	if err := validateFitnessGoal(g); err != nil {
		return model.FitnessGoal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = s.newID()
	if g.Date.IsZero() {
		g.Date = model.CalendarDay(s.now())
	}
	s.state.FitnessGoals = append(s.state.FitnessGoals, g)
	return g, s.persistLocked(ctx)
}

// UpdateFitnessGoal merges the non-nil patch fields into the goal with id.
func (s *Store) UpdateFitnessGoal(ctx context.Context, id string, patch model.FitnessGoalPatch) (model.FitnessGoal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.FitnessGoals, id, fitnessGoalID)
	if i < 0 {
		return model.FitnessGoal{}, false, nil
	}

	g := s.state.FitnessGoals[i]
	if patch.Target != nil {
		g.Target = *patch.Target
	}
	if patch.Current != nil {
		g.Current = *patch.Current
	}
	if patch.Unit != nil {
		g.Unit = *patch.Unit
	}
	if patch.Date != nil {
		g.Date = *patch.Date
	}
	if err := validateFitnessGoal(g); err != nil {
		return s.state.FitnessGoals[i], true, err
	}

	s.state.FitnessGoals[i] = g
	return g, true, s.persistLocked(ctx)
}

// SetFitnessProgress records the current value for the goal with id.
func (s *Store) SetFitnessProgress(ctx context.Context, id string, current float64) (model.FitnessGoal, bool, error) {
	return s.UpdateFitnessGoal(ctx, id, model.FitnessGoalPatch{Current: &current})
}

// DeleteFitnessGoal removes the goal with id and reports whether it existed.
func (s *Store) DeleteFitnessGoal(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.FitnessGoals, id, fitnessGoalID)
	if i < 0 {
		return false, nil
	}
	s.state.FitnessGoals = append(s.state.FitnessGoals[:i], s.state.FitnessGoals[i+1:]...)
	return true, s.persistLocked(ctx)
}

// FitnessGoals returns every fitness goal.
func (s *Store) FitnessGoals() []model.FitnessGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.state.FitnessGoals)
}
