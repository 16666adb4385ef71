package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

const csvDate = "2006-01-02"

// Collection names one exportable list of records.
type Collection string

// Exportable collections.
const (
	StudyTasks   Collection = "studyTasks"
	Expenses     Collection = "expenses"
	Habits       Collection = "habits"
	FitnessGoals Collection = "fitnessGoals"
)

// Collections returns every collection in export order.
func Collections() []Collection {
	return []Collection{StudyTasks, Expenses, Habits, FitnessGoals}
}

// ParseCollection converts a name such as "expenses" into a Collection.
func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}

// CSV writes one collection of snap with a header row and reports how many
// records were written. An empty collection writes nothing at all.
func CSV(w io.Writer, snap model.Snapshot, c Collection) (int, error) {
	header, rows, err := table(snap, c)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("failed to write %s CSV: %w", c, err)
	}
	return len(rows), nil
}

func table(snap model.Snapshot, c Collection) ([]string, [][]string, error) {
	switch c {
	case StudyTasks:
		rows := make([][]string, 0, len(snap.StudyTasks))
		for _, t := range snap.StudyTasks {
			rows = append(rows, []string{
				t.ID, t.Subject, t.Topic, strconv.Itoa(t.Duration),
				string(t.Priority), string(t.Status), day(t.DueDate), day(t.CreatedAt),
			})
		}
		return []string{"id", "subject", "topic", "duration", "priority", "status", "dueDate", "createdAt"}, rows, nil

	case Expenses:
		rows := make([][]string, 0, len(snap.Expenses))
		for _, e := range snap.Expenses {
			rows = append(rows, []string{
				e.ID, day(e.Date), string(e.Type), e.Category, number(e.Amount),
				e.Description, strings.Join(e.Tags, ";"),
			})
		}
		return []string{"id", "date", "type", "category", "amount", "description", "tags"}, rows, nil

	case Habits:
		rows := make([][]string, 0, len(snap.Habits))
		for _, h := range snap.Habits {
			dates := make([]string, len(h.CompletedDates))
			for i, d := range h.CompletedDates {
				dates[i] = day(d)
			}
			rows = append(rows, []string{
				h.ID, h.Name, h.Description, string(h.Frequency), strconv.Itoa(h.TargetCount),
				strconv.Itoa(h.CurrentStreak), strconv.Itoa(h.LongestStreak),
				strings.Join(dates, ";"), day(h.CreatedAt),
			})
		}
		return []string{
			"id", "name", "description", "frequency", "targetCount",
			"currentStreak", "longestStreak", "completedDates", "createdAt",
		}, rows, nil

	case FitnessGoals:
		rows := make([][]string, 0, len(snap.FitnessGoals))
		for _, g := range snap.FitnessGoals {
			rows = append(rows, []string{
				g.ID, string(g.Type), number(g.Target), number(g.Current), g.Unit, day(g.Date),
			})
		}
		return []string{"id", "type", "target", "current", "unit", "date"}, rows, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvDate)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
