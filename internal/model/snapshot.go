package model

// SnapshotVersion is the current persisted snapshot layout.
const SnapshotVersion = 1

// Snapshot is the persisted form of the dashboard state.
type Snapshot struct {
	UserName     string        `json:"userName"`
	StudyTasks   []StudyTask   `json:"studyTasks"`
	Expenses     []Expense     `json:"expenses"`
	Habits       []Habit       `json:"habits"`
	FitnessGoals []FitnessGoal `json:"fitnessGoals"`
	Version      int           `json:"version"`
}

// ProductivityMetrics summarizes activity across modules.
type ProductivityMetrics struct {
	CompletedTasks      int     `json:"completedTasks"`
	TotalStudyHours     float64 `json:"totalStudyHours"`
	TotalExpenses       float64 `json:"totalExpenses"`
	TotalIncome         float64 `json:"totalIncome"`
	HabitCompletionRate float64 `json:"habitCompletionRate"`
	ProductivityScore   int     `json:"productivityScore"`
}
