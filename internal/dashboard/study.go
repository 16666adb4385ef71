package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

func studyTaskID(t model.StudyTask) string { return t.ID }

func validateStudyTask(t model.StudyTask) error {
	switch {
	case strings.TrimSpace(t.Subject) == "":
		return fmt.Errorf("%w: study task subject is required", ErrInvalidRecord)
	case strings.TrimSpace(t.Topic) == "":
		return fmt.Errorf("%w: study task topic is required", ErrInvalidRecord)
	case t.Duration < 0:
		return fmt.Errorf("%w: study duration cannot be negative", ErrInvalidRecord)
	case !t.Priority.Valid():
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidRecord, t.Priority)
	case !t.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, t.Status)
	}
	return nil
}

// AddStudyTask stores a new study task. Id and creation time are assigned here;
// priority defaults to medium and status to pending.
func (s *Store) AddStudyTask(ctx context.Context, task model.StudyTask) (model.StudyTask, error) {
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if err := validateStudyTask(task); err != nil {
		return model.StudyTask{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.newID()
	task.CreatedAt = s.now()
	s.state.StudyTasks = append(s.state.StudyTasks, task)
	return task, s.persistLocked(ctx)
}

// UpdateStudyTask merges the non-nil patch fields into the task with id.
func (s *Store) UpdateStudyTask(ctx context.Context, id string, patch model.StudyTaskPatch) (model.StudyTask, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.StudyTasks, id, studyTaskID)
	if i < 0 {
		return model.StudyTask{}, false, nil
	}

	t := s.state.StudyTasks[i]
	if patch.Subject != nil {
		t.Subject = *patch.Subject
	}
	if patch.Topic != nil {
		t.Topic = *patch.Topic
	}
	if patch.Duration != nil {
		t.Duration = *patch.Duration
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if err := validateStudyTask(t); err != nil {
		return s.state.StudyTasks[i], true, err
	}

	s.state.StudyTasks[i] = t
	return t, true, s.persistLocked(ctx)
}

// DeleteStudyTask removes the task with id and reports whether it existed.
func (s *Store) DeleteStudyTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.state.StudyTasks, id, studyTaskID)
	if i < 0 {
		return false, nil
	}
	s.state.StudyTasks = append(s.state.StudyTasks[:i], s.state.StudyTasks[i+1:]...)
	return true, s.persistLocked(ctx)
}

// StudyTasks returns every study task in creation order.
func (s *Store) StudyTasks() []model.StudyTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.state.StudyTasks)
}
