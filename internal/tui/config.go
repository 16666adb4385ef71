package tui

import (
	"time"

	"github.com/Veraticus/lifedash/internal/tui/themes"
)

// Config holds chat screen configuration.
type Config struct {
	Now      func() time.Time
	Theme    themes.Theme
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the chat screen.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Now:      time.Now,
		Theme:    themes.Default,
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock sets the time source used for "today" in panels.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithHelp toggles the key help line.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
