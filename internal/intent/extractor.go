package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
)

// Lookup lists for parameter extraction. Order matters: the first entry found
// in the text is the one reported, even when several appear.
var (
	studySubjects = []string{
		"dsa", "web development", "machine learning", "database",
		"networking", "os", "system design",
	}
	expenseCategories = []string{
		"food", "transport", "entertainment", "utilities", "shopping", "healthcare",
	}
	habitTypes = []string{
		"exercise", "meditation", "reading", "water", "sleep", "workout", "yoga",
	}
)

var (
	durationRegex = regexp.MustCompile(`(\d+)\s*(hour|hr|minute|min)(s?)`)
	amountRegex   = regexp.MustCompile(`\$?(\d+(?:\.\d{2})?)`)
)

// ExpenseCategories returns the named expense categories in match order.
func ExpenseCategories() []string {
	return append([]string(nil), expenseCategories...)
}

// ExtractParameters pulls module-specific values out of normalized text.
// Values that are not found are simply absent from the returned map.
func ExtractParameters(normalized string, module model.Module) map[string]any {
	params := make(map[string]any)

	switch module {
	case model.StudyPlanner:
		if subject, ok := firstContained(normalized, studySubjects); ok {
			params[model.ParamSubject] = subject
		}
		if m := durationRegex.FindStringSubmatch(normalized); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				params[model.ParamDuration] = n
				params[model.ParamUnit] = m[2] + m[3]
			}
		}

	case model.ExpenseTracker:
		if m := amountRegex.FindStringSubmatch(normalized); m != nil {
			if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
				params[model.ParamAmount] = amount
			}
		}
		if category, ok := MatchCategory(normalized); ok {
			params[model.ParamCategory] = category
		}

	case model.HabitTracker:
		if habit, ok := firstContained(normalized, habitTypes); ok {
			params[model.ParamHabitType] = habit
		}

	case model.Analytics, model.Welcome:
	}

	return params
}

// MatchCategory returns the first expense category mentioned in text.
func MatchCategory(text string) (string, bool) {
	return firstContained(strings.ToLower(text), expenseCategories)
}

func firstContained(text string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if strings.Contains(text, c) {
			return c, true
		}
	}
	return "", false
}
