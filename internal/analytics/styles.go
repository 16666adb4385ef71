package analytics

import (
	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	// Base styles from CLI package
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	// Report-specific styles
	Box       lipgloss.Style
	Score     lipgloss.Style
	Bar       lipgloss.Style
	BarEmpty  lipgloss.Style
	Highlight lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.Bar = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	s.BarEmpty = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#333333"))

	s.Highlight = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.InfoColor)

	return s
}

// WithWidth returns a copy whose boxes fit the given terminal width.
func (s *Styles) WithWidth(width int) *Styles {
	newStyles := *s
	if width > 0 && width < 100 {
		box := s.Box
		newStyles.Box = box.Width(width - 4)
	}
	return &newStyles
}

// ForScore returns the style used to render a productivity score.
func (s *Styles) ForScore(score int) lipgloss.Style {
	switch {
	case score >= 60:
		return s.Success
	case score >= 40:
		return s.Warning
	default:
		return s.Error
	}
}
