// Package themes defines the color schemes of the chat screen.
package themes

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
}

// Theme defines the visual style for the chat screen.
type Theme struct {
	Header        lipgloss.Style
	Title         lipgloss.Style
	Normal        lipgloss.Style
	Muted         lipgloss.Style
	UserMessage   lipgloss.Style
	BotMessage    lipgloss.Style
	SystemMessage lipgloss.Style
	Panel         lipgloss.Style
	Suggestion    lipgloss.Style
	StatusBar     lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style
	Palette       Palette
}

// New builds a theme from a palette.
func New(p Palette) Theme {
	return Theme{
		Palette: p,
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Foreground).
			Background(p.Primary).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Normal: lipgloss.NewStyle().
			Foreground(p.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		UserMessage: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		BotMessage: lipgloss.NewStyle().
			Foreground(p.Foreground),
		SystemMessage: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Suggestion: lipgloss.NewStyle().
			Foreground(p.Secondary),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Muted),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		ProgressFull: lipgloss.NewStyle().
			Foreground(p.Primary),
		ProgressEmpty: lipgloss.NewStyle().
			Foreground(p.Border),
	}
}

// Default is the violet dashboard theme.
var Default = New(Palette{
	Primary:    lipgloss.Color("#7c3aed"),
	Secondary:  lipgloss.Color("#a78bfa"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(Palette{
	Primary:    lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#f5c2e7"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Border:     lipgloss.Color("#45475a"),
	Muted:      lipgloss.Color("#6c7086"),
})

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps expense categories to emoji icons.
var CategoryIcons = map[string]string{
	"food":          "🍕",
	"transport":     "🚗",
	"entertainment": "🎬",
	"utilities":     "💡",
	"shopping":      "🛍️",
	"healthcare":    "💊",
	"other":         "📦",
}

// GetCategoryIcon returns an icon for an expense category.
func GetCategoryIcon(category string) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
