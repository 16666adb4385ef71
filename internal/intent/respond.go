package intent

import "github.com/Veraticus/lifedash/internal/model"

const welcomeResponse = `I'm your AI productivity assistant! I can help you with:

• 📚 Planning your studies
• 💰 Tracking expenses
• 🎯 Building habits
• 📊 Viewing analytics

What would you like to do?`

// Respond returns the canned reply shown when an intent is handled.
func Respond(in model.Intent) string {
	switch in.Module {
	case model.StudyPlanner:
		return "I'll help you plan your study schedule. Let me show you the study planner where you can organize your tasks and track your progress."
	case model.ExpenseTracker:
		return "Let me open the expense tracker for you. You can manage your finances and monitor your spending here."
	case model.HabitTracker:
		return "Great! I'll help you build consistent habits. Here's your habit tracker to monitor your daily routines and fitness goals."
	case model.Analytics:
		return "Here's your productivity analytics dashboard. You can see your overall performance and insights here."
	default:
		return welcomeResponse
	}
}

// Suggestions returns follow-up prompts for a module. The slice is a fresh copy.
func Suggestions(m model.Module) []string {
	switch m {
	case model.StudyPlanner:
		return []string{
			"Schedule DSA practice",
			"Plan web development study",
			"Set exam preparation tasks",
			"Review today's progress",
		}
	case model.ExpenseTracker:
		return []string{
			"Add today's expenses",
			"View monthly budget",
			"Check spending by category",
			"Set budget limits",
		}
	case model.HabitTracker:
		return []string{
			"Log today's workout",
			"Track water intake",
			"Update meditation streak",
			"View habit progress",
		}
	case model.Analytics:
		return []string{
			"Show weekly productivity",
			"Compare this month vs last",
			"View completion rates",
			"Export report",
		}
	default:
		return []string{
			"Plan my study schedule",
			"Track my expenses",
			"Help me stay fit",
			"Show productivity analytics",
		}
	}
}

// Title returns the display heading for a module.
func Title(m model.Module) string {
	switch m {
	case model.StudyPlanner:
		return "📚 Study Planner"
	case model.ExpenseTracker:
		return "💰 Expense Tracker"
	case model.HabitTracker:
		return "🎯 Habit Tracker"
	case model.Analytics:
		return "📊 Analytics"
	default:
		return "👋 Welcome"
	}
}
