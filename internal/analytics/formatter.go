package analytics

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
)

const (
	scoreBarWidth    = 30
	categoryBarWidth = 20
)

// Formatter renders reports for terminal display.
type Formatter struct {
	styles *Styles
}

// NewFormatter creates a formatter with default styles.
func NewFormatter() *Formatter {
	return &Formatter{styles: NewStyles()}
}

// WithWidth returns a formatter sized for the terminal width.
func (f *Formatter) WithWidth(width int) *Formatter {
	return &Formatter{styles: f.styles.WithWidth(width)}
}

// FormatReport renders the whole analytics view.
func (f *Formatter) FormatReport(r Report) string {
	sections := []string{
		f.formatHeader(r),
		f.formatScore(r.Metrics.ProductivityScore),
		f.formatMetrics(r),
	}
	if len(r.Breakdown) > 0 {
		sections = append(sections, f.formatBreakdown(r.Breakdown))
	}
	sections = append(sections, f.formatWeekly(r.Weekly))
	if len(r.Fitness) > 0 {
		sections = append(sections, f.formatFitness(r.Fitness))
	}
	return strings.Join(sections, "\n\n")
}

// FormatSummary renders the score and headline numbers only.
func (f *Formatter) FormatSummary(r Report) string {
	return f.formatScore(r.Metrics.ProductivityScore) + "\n\n" + f.formatMetrics(r)
}

func (f *Formatter) formatHeader(r Report) string {
	title := f.styles.Title.Render(cli.ChartIcon + " Productivity Analytics")
	sub := f.styles.Subtle.Render(fmt.Sprintf("%s · %s", r.UserName, r.GeneratedAt.Format("Jan 2, 2006")))
	return title + "\n" + sub
}

func (f *Formatter) formatScore(score int) string {
	style := f.styles.ForScore(score)
	text := f.styles.Score.Render(fmt.Sprintf("Overall Productivity Score: %d / 100", score))
	bar := style.Render(cli.ProgressBar(float64(score)/100, scoreBarWidth))
	return fmt.Sprintf("%s\n%s\n%s", text, bar, style.Render(Verdict(score)))
}

func (f *Formatter) formatMetrics(r Report) string {
	m := r.Metrics
	lines := []string{
		fmt.Sprintf("Tasks completed:   %d (%d pending)", m.CompletedTasks, r.PendingTasks),
		fmt.Sprintf("Study hours:       %.1f", m.TotalStudyHours),
		fmt.Sprintf("Total expenses:    %s", FormatCurrency(m.TotalExpenses)),
		fmt.Sprintf("Total income:      %s", FormatCurrency(m.TotalIncome)),
		fmt.Sprintf("Avg habit streak:  %.1f days (%d active)", m.HabitCompletionRate, r.ActiveHabits),
	}
	return f.styles.Box.Render(strings.Join(lines, "\n"))
}

func (f *Formatter) formatBreakdown(totals []CategoryTotal) string {
	var sum float64
	for _, t := range totals {
		sum += t.Amount
	}

	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		share := 0.0
		if sum > 0 {
			share = t.Amount / sum
		}
		rows = append(rows, []string{
			t.Category,
			FormatCurrency(t.Amount),
			f.styles.Bar.Render(cli.ProgressBar(share, categoryBarWidth)),
			fmt.Sprintf("%.0f%%", share*100),
		})
	}

	title := f.styles.Subtitle.Render("Spending by category:")
	return title + "\n" + cli.RenderTable([]string{"Category", "Amount", "", "Share"}, rows)
}

func (f *Formatter) formatWeekly(days []DayActivity) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Label(),
			fmt.Sprintf("%d", d.StudyTasks),
			fmt.Sprintf("%d", d.HabitCompletions),
		})
	}
	title := f.styles.Subtitle.Render("Last 7 days:")
	return title + "\n" + cli.RenderTable([]string{"Day", "Study", "Habits"}, rows)
}

func (f *Formatter) formatFitness(goals []FitnessProgress) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			string(g.Type),
			fmt.Sprintf("%g / %g %s", g.Current, g.Target, g.Unit),
			f.styles.Bar.Render(cli.ProgressBar(float64(g.Percent)/100, categoryBarWidth)),
			fmt.Sprintf("%d%%", g.Percent),
		})
	}
	title := f.styles.Subtitle.Render("Fitness goals:")
	return title + "\n" + cli.RenderTable([]string{"Goal", "Progress", "", ""}, rows)
}

// FormatCurrency renders an amount in dollars with two decimals.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents)
}
