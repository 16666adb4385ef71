// Package model defines the core data structures for the lifedash application.
package model

import (
	"errors"
	"fmt"
)

// ErrUnknownModule is returned when a string does not name a dashboard module.
var ErrUnknownModule = errors.New("unknown module")

// Module identifies one of the fixed dashboard areas.
type Module uint8

const (
	// Welcome is the sentinel module shown when nothing else matches.
	Welcome Module = iota
	// StudyPlanner organizes study tasks.
	StudyPlanner
	// ExpenseTracker records income and expenses.
	ExpenseTracker
	// HabitTracker tracks habits, streaks and fitness goals.
	HabitTracker
	// Analytics summarizes productivity across the other modules.
	Analytics

	moduleCount
)

var moduleNames = [moduleCount]string{
	Welcome:        "welcome",
	StudyPlanner:   "studyPlanner",
	ExpenseTracker: "expenseTracker",
	HabitTracker:   "habitTracker",
	Analytics:      "analytics",
}

// AllModules returns every module in declaration order.
func AllModules() []Module {
	mods := make([]Module, 0, moduleCount)
	for m := Welcome; m < moduleCount; m++ {
		mods = append(mods, m)
	}
	return mods
}

// ParseModule converts the wire name of a module back into a Module.
func ParseModule(s string) (Module, error) {
	for m, name := range moduleNames {
		if name == s {
			return Module(m), nil
		}
	}
	return Welcome, fmt.Errorf("%w: %q", ErrUnknownModule, s)
}

// Valid reports whether m is one of the declared modules.
func (m Module) Valid() bool {
	return m < moduleCount
}

func (m Module) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Module(%d)", uint8(m))
	}
	return moduleNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Module) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModule, uint8(m))
	}
	return []byte(moduleNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Module) UnmarshalText(text []byte) error {
	parsed, err := ParseModule(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
