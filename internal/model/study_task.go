package model

import "time"

// Priority ranks how urgent a study task is.
type Priority string

// Study task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a study task.
type TaskStatus string

// Study task states.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// StudyTask is a planned block of study.
type StudyTask struct {
	DueDate   time.Time  `json:"dueDate"`
	CreatedAt time.Time  `json:"createdAt"`
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Topic     string     `json:"topic"`
	Priority  Priority   `json:"priority"`
	Status    TaskStatus `json:"status"`
	Duration  int        `json:"duration"` // minutes
}

// StudyTaskPatch carries the fields to change on a study task. Nil fields are left alone.
type StudyTaskPatch struct {
	DueDate  *time.Time
	Subject  *string
	Topic    *string
	Priority *Priority
	Status   *TaskStatus
	Duration *int
}
