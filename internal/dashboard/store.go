// Package dashboard owns the mutable dashboard state: study tasks, expenses,
// habits, fitness goals, the user name and the chat log.
//
// A Store is created once per process and handed to whatever needs it. Every
// mutation that changes state is forwarded to the configured Saver; lookups by
// an id that does not exist are no-ops and never write.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/google/uuid"
)

// DefaultUserName is used until the user sets one.
const DefaultUserName = "User"

// ErrInvalidRecord is returned when a record fails validation.
var ErrInvalidRecord = errors.New("invalid record")

// Saver persists a snapshot of the store after each effective mutation.
type Saver interface {
	Save(ctx context.Context, snap model.Snapshot) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, snap model.Snapshot) error

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, snap model.Snapshot) error {
	return f(ctx, snap)
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshot starts the store from previously persisted state.
func WithSnapshot(snap model.Snapshot) Option {
	return func(s *Store) {
		loaded := cloneSnapshot(snap)
		s.initial = &loaded
	}
}

// WithSaver sets where snapshots are written after each mutation.
func WithSaver(saver Saver) Option {
	return func(s *Store) {
		s.saver = saver
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Store is the single owned container for dashboard state. It is safe for
// concurrent use.
type Store struct {
	saver    Saver
	now      func() time.Time
	newID    func() string
	initial  *model.Snapshot
	state    model.Snapshot
	messages []model.Message
	mu       sync.Mutex
}

// New builds a store. Without WithSnapshot it starts from the seeded initial state.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.initial != nil {
		s.state = *s.initial
		s.initial = nil
		s.normalizeLocked()
	} else {
		s.state = s.seed()
	}
	return s
}

// seed returns the state of a brand new dashboard.
func (s *Store) seed() model.Snapshot {
	today := model.CalendarDay(s.now())
	return model.Snapshot{
		Version:    model.SnapshotVersion,
		UserName:   DefaultUserName,
		StudyTasks: []model.StudyTask{},
		Expenses:   []model.Expense{},
		Habits:     []model.Habit{},
		FitnessGoals: []model.FitnessGoal{
			{ID: s.newID(), Type: model.FitnessSteps, Target: 10000, Unit: "steps", Date: today},
			{ID: s.newID(), Type: model.FitnessWater, Target: 8, Unit: "glasses", Date: today},
			{ID: s.newID(), Type: model.FitnessSleep, Target: 8, Unit: "hours", Date: today},
		},
	}
}

// normalizeLocked fills gaps in loaded state. Snapshots written before fitness
// goals were persisted carry no goals at all and get the seeded ones.
func (s *Store) normalizeLocked() {
	if s.state.UserName == "" {
		s.state.UserName = DefaultUserName
	}
	if s.state.Version == 0 {
		s.state.Version = model.SnapshotVersion
	}
	if s.state.StudyTasks == nil {
		s.state.StudyTasks = []model.StudyTask{}
	}
	if s.state.Expenses == nil {
		s.state.Expenses = []model.Expense{}
	}
	if s.state.Habits == nil {
		s.state.Habits = []model.Habit{}
	}
	for i := range s.state.Habits {
		if s.state.Habits[i].CompletedDates == nil {
			s.state.Habits[i].CompletedDates = []time.Time{}
		}
	}
	if s.state.FitnessGoals == nil {
		s.state.FitnessGoals = s.seed().FitnessGoals
	}
}

// Snapshot returns a deep copy of the persisted part of the state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.state)
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// UserName returns the configured user name.
func (s *Store) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UserName
}

// SetUserName changes the user name. Blank names are rejected.
func (s *Store) SetUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: user name cannot be empty", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.UserName == name {
		return nil
	}
	s.state.UserName = name
	return s.persistLocked(ctx)
}

// Reset discards all records and the chat log and returns to the seeded state.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.seed()
	s.messages = nil
	return s.persistLocked(ctx)
}

// persistLocked hands the current state to the saver. The in-memory change is
// kept even when saving fails.
func (s *Store) persistLocked(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(ctx, cloneSnapshot(s.state)); err != nil {
		return fmt.Errorf("failed to persist dashboard state: %w", err)
	}
	return nil
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i := range items {
		if idOf(items[i]) == id {
			return i
		}
	}
	return -1
}

func cloneSnapshot(in model.Snapshot) model.Snapshot {
	out := in
	out.StudyTasks = cloneSlice(in.StudyTasks)
	out.Expenses = nil
	if in.Expenses != nil {
		out.Expenses = make([]model.Expense, len(in.Expenses))
		for i, e := range in.Expenses {
			out.Expenses[i] = cloneExpense(e)
		}
	}
	out.Habits = nil
	if in.Habits != nil {
		out.Habits = make([]model.Habit, len(in.Habits))
		for i, h := range in.Habits {
			out.Habits[i] = cloneHabit(h)
		}
	}
	out.FitnessGoals = cloneSlice(in.FitnessGoals)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneExpense(e model.Expense) model.Expense {
	e.Tags = cloneSlice(e.Tags)
	return e
}

func cloneHabit(h model.Habit) model.Habit {
	h.CompletedDates = cloneSlice(h.CompletedDates)
	return h
}
