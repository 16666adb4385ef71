package model

import "time"

// ExpenseType distinguishes money coming in from money going out.
type ExpenseType string

// Expense types.
const (
	ExpenseTypeIncome  ExpenseType = "income"
	ExpenseTypeExpense ExpenseType = "expense"
)

// Valid reports whether t is a known expense type.
func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeIncome || t == ExpenseTypeExpense
}

// CategoryOther collects expenses that fit no named category.
const CategoryOther = "other"

// Expense is a single money movement.
type Expense struct {
	Date        time.Time   `json:"date"`
	ID          string      `json:"id"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Type        ExpenseType `json:"type"`
	Tags        []string    `json:"tags,omitempty"`
	Amount      float64     `json:"amount"`
}

// HasTag reports whether the expense carries the given tag.
func (e Expense) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ExpensePatch carries the fields to change on an expense.
type ExpensePatch struct {
	Date        *time.Time
	Category    *string
	Description *string
	Type        *ExpenseType
	Amount      *float64
	Tags        []string
}
