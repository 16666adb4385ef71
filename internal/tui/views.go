package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/analytics"
	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const (
	panelListLimit = 6
	barWidth       = 16
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderChat(),
		m.renderPanel(),
		m.renderSuggestions(),
		m.input.View(),
	}
	if m.busy {
		sections = append(sections, m.theme.StatusBar.Render(cli.RobotIcon+" thinking..."))
	}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render(cli.DashboardIcon + " AI Life Dashboard")
	greeting := m.theme.Muted.Render(fmt.Sprintf("Hi, %s", m.store.UserName()))
	active := m.theme.Title.Render(intent.Title(m.ActiveModule()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", greeting, "  ", active)
}

// visibleMessages is how many chat lines fit above the panel.
func (m Model) visibleMessages() int {
	return max(m.height/6, 2)
}

func (m Model) renderChat() string {
	messages := m.store.Messages()
	if len(messages) == 0 {
		return m.theme.SystemMessage.Render(intent.Respond(model.FallbackIntent("")))
	}

	if n := m.visibleMessages(); len(messages) > n {
		messages = messages[len(messages)-n:]
	}

	wrap := lipgloss.NewStyle().Width(max(m.width-2, 20))
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		var line string
		switch msg.Role {
		case model.RoleUser:
			line = m.theme.UserMessage.Render("You: ") + msg.Content
		case model.RoleAssistant:
			line = cli.RobotIcon + " " + m.theme.BotMessage.Render(msg.Content)
		default:
			line = m.theme.SystemMessage.Render(msg.Content)
		}
		lines = append(lines, wrap.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPanel() string {
	snap := m.store.Snapshot()
	active := m.ActiveModule()

	var body string
	switch active {
	case model.StudyPlanner:
		body = m.studyPanel(snap)
	case model.ExpenseTracker:
		body = m.expensePanel(snap)
	case model.HabitTracker:
		body = m.habitPanel(snap)
	case model.Analytics:
		report := analytics.BuildReport(snap, m.config.Now())
		body = analytics.NewFormatter().WithWidth(m.width - 4).FormatSummary(report)
	default:
		body = m.welcomePanel(snap)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.theme.Title.Render(intent.Title(active)), body)
	return m.theme.Panel.Width(max(m.width-2, 20)).Render(content)
}

func (m Model) welcomePanel(snap model.Snapshot) string {
	pending := 0
	for _, t := range snap.StudyTasks {
		if t.Status != model.StatusCompleted {
			pending++
		}
	}
	metrics := analytics.Metrics(snap)

	return strings.Join([]string{
		fmt.Sprintf("📚 %d pending study tasks", pending),
		fmt.Sprintf("💰 %s spent", analytics.FormatCurrency(metrics.TotalExpenses)),
		fmt.Sprintf("🎯 %d habits tracked", len(snap.Habits)),
		fmt.Sprintf("%s Productivity score %d / 100", cli.ChartIcon, metrics.ProductivityScore),
	}, "\n")
}

func (m Model) studyPanel(snap model.Snapshot) string {
	if len(snap.StudyTasks) == 0 {
		return m.theme.Muted.Render("No study tasks yet. Add one with: lifedash study add <subject> <topic>")
	}

	lines := make([]string, 0, panelListLimit+1)
	for i, t := range snap.StudyTasks {
		if i == panelListLimit {
			lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("… and %d more", len(snap.StudyTasks)-i)))
			break
		}
		box := "[ ]"
		if t.Status == model.StatusCompleted {
			box = m.theme.StatusSuccess.Render("[" + cli.SuccessIcon + "]")
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s (%d min, %s)", box, t.Subject, t.Topic, t.Duration, t.Priority))
	}

	hours := analytics.Metrics(snap).TotalStudyHours
	lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("%.1f hours studied", hours)))
	return strings.Join(lines, "\n")
}

func (m Model) expensePanel(snap model.Snapshot) string {
	metrics := analytics.Metrics(snap)
	lines := []string{
		fmt.Sprintf("Spent %s · Earned %s · Balance %s",
			analytics.FormatCurrency(metrics.TotalExpenses),
			analytics.FormatCurrency(metrics.TotalIncome),
			analytics.FormatCurrency(metrics.TotalIncome-metrics.TotalExpenses)),
	}

	breakdown := analytics.ExpenseBreakdown(snap.Expenses)
	if len(breakdown) == 0 {
		lines = append(lines, m.theme.Muted.Render("No expenses yet. Add one with: lifedash expense add <amount> <category>"))
		return strings.Join(lines, "\n")
	}

	for i, c := range breakdown {
		if i == panelListLimit {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %-14s %s",
			themes.GetCategoryIcon(c.Category), c.Category, analytics.FormatCurrency(c.Amount)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) habitPanel(snap model.Snapshot) string {
	now := m.config.Now()
	lines := make([]string, 0, len(snap.Habits)+len(snap.FitnessGoals)+1)

	if len(snap.Habits) == 0 {
		lines = append(lines, m.theme.Muted.Render("No habits yet. Add one with: lifedash habit add <name>"))
	}
	for i, h := range snap.Habits {
		if i == panelListLimit {
			break
		}
		status := m.theme.Muted.Render("not done today")
		if h.CompletedOn(now) {
			status = m.theme.StatusSuccess.Render(cli.SuccessIcon + " done today")
		}
		lines = append(lines, fmt.Sprintf("%s %s %d day streak (best %d) %s",
			h.Name, cli.FireIcon, h.CurrentStreak, h.LongestStreak, status))
	}

	for _, g := range snap.FitnessGoals {
		fraction := 0.0
		if g.Target > 0 {
			fraction = g.Current / g.Target
		}
		lines = append(lines, fmt.Sprintf("%-8s %s %3d%% (%g/%g %s)",
			g.Type, m.theme.ProgressFull.Render(cli.ProgressBar(fraction, barWidth)), g.Percent(), g.Current, g.Target, g.Unit))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSuggestions() string {
	suggestions := intent.Suggestions(m.ActiveModule())
	styled := make([]string, len(suggestions))
	for i, s := range suggestions {
		styled[i] = m.theme.Suggestion.Render(s)
	}
	return m.theme.Muted.Render("Try: ") + strings.Join(styled, m.theme.Muted.Render(" · "))
}
