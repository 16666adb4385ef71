// Package export writes dashboard data to JSON, YAML and CSV files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultBaseName is the file name prefix used when none is given.
const DefaultBaseName = "ai-life-dashboard-data"

// ErrUnknownCollection is returned for a collection name that does not exist.
var ErrUnknownCollection = errors.New("unknown collection")

// Document is the full export: every collection plus the metrics at export time.
type Document struct {
	ExportDate   time.Time                 `json:"exportDate"`
	StudyTasks   []model.StudyTask         `json:"studyTasks"`
	Expenses     []model.Expense           `json:"expenses"`
	Habits       []model.Habit             `json:"habits"`
	FitnessGoals []model.FitnessGoal       `json:"fitnessGoals"`
	Metrics      model.ProductivityMetrics `json:"metrics"`
}

// NewDocument assembles an export document.
func NewDocument(snap model.Snapshot, metrics model.ProductivityMetrics, now time.Time) Document {
	return Document{
		StudyTasks:   orEmpty(snap.StudyTasks),
		Expenses:     orEmpty(snap.Expenses),
		Habits:       orEmpty(snap.Habits),
		FitnessGoals: orEmpty(snap.FitnessGoals),
		Metrics:      metrics,
		ExportDate:   now.UTC(),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// JSON writes the export document as indented JSON.
func JSON(w io.Writer, snap model.Snapshot, metrics model.ProductivityMetrics, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(snap, metrics, now)); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}
	return nil
}

// YAML writes the export document as YAML. Keys match the JSON export.
func YAML(w io.Writer, snap model.Snapshot, metrics model.ProductivityMetrics, now time.Time) error {
	raw, err := json.Marshal(NewDocument(snap, metrics, now))
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("failed to write YAML export: %w", err)
	}
	return enc.Close()
}

// FileName builds "<base>-YYYY-MM-DD.<ext>".
func FileName(base, ext string, now time.Time) string {
	if base == "" {
		base = DefaultBaseName
	}
	return fmt.Sprintf("%s-%s.%s", base, now.Format("2006-01-02"), ext)
}
