package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

func expenseID(e model.Expense) string { return e.ID }

func validateExpense(e model.Expense) error {
	switch {
	case math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0:
		return fmt.Errorf("%w: amount must be a positive number, got %v", ErrInvalidRecord, e.Amount)
	case !e.Type.Valid():
		return fmt.Errorf("%w: unknown expense type %q", ErrInvalidRecord, e.Type)
	case strings.TrimSpace(e.Category) == "":
		return fmt.Errorf("%w: expense category is required", ErrInvalidRecord)
	}
	return nil
}

// AddExpense stores a new expense or income entry. Type defaults to expense,
// category to "other" and date to now.
func (s *Store) AddExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	if e.Type == "" {
		e.Type = model.ExpenseTypeExpense
	}
	if strings.TrimSpace(e.Category) == "" {
		e.Category = model.CategoryOther
	}
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	if err := validateExpense(e); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.newID()
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	e = cloneExpense(e)
	s.state.Expenses = append(s.state.Expenses, e)
	return cloneExpense(e), s.persistLocked(ctx)
}

// AddExpenses stores several entries with a single save. It stops at the first
// invalid entry without storing anything.
func (s *Store) AddExpenses(ctx context.Context, entries []model.Expense) ([]model.Expense, error) {
	prepared := make([]model.Expense, 0, len(entries))
	for i, e := range entries {
		if e.Type == "" {
			e.Type = model.ExpenseTypeExpense
		}
		if strings.TrimSpace(e.Category) == "" {
			e.Category = model.CategoryOther
		}
		e.Category = strings.ToLower(strings.TrimSpace(e.Category))
		if err := validateExpense(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		prepared = append(prepared, cloneExpense(e))
	}
	if len(prepared) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range prepared {
		prepared[i].ID = s.newID()
		if prepared[i].Date.IsZero() {
			prepared[i].Date = s.now()
		}
		s.state.Expenses = append(s.state.Expenses, cloneExpense(prepared[i]))
	}
	return prepared, s.persistLocked(ctx)
}

// UpdateExpense merges the non-nil patch fields into the expense with id.
// A non-nil Tags slice replaces the existing tags.
func (s *Store) UpdateExpense(ctx context.Context, id string, patch model.ExpensePatch) (model.Expense, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Expenses, id, expenseID)
	if i < 0 {
		return model.Expense{}, false, nil
	}

	e := cloneExpense(s.state.Expenses[i])
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Category != nil {
		e.Category = strings.ToLower(strings.TrimSpace(*patch.Category))
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Tags != nil {
		e.Tags = cloneSlice(patch.Tags)
	}
	if err := validateExpense(e); err != nil {
		return cloneExpense(s.state.Expenses[i]), true, err
	}

	s.state.Expenses[i] = e
	return cloneExpense(e), true, s.persistLocked(ctx)
}

// DeleteExpense removes the expense with id and reports whether it existed.
func (s *Store) DeleteExpense(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.Expenses, id, expenseID)
	if i < 0 {
		return false, nil
	}
	s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
	return true, s.persistLocked(ctx)
}

// Expenses returns every expense and income entry in insertion order.
func (s *Store) Expenses() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Expense, len(s.state.Expenses))
	for i, e := range s.state.Expenses {
		out[i] = cloneExpense(e)
	}
	return out
}
