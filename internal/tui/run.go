package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/lifedash/internal/dashboard"
	"github.com/Veraticus/lifedash/internal/dispatch"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the chat screen until the user quits or ctx is canceled.
func Run(ctx context.Context, c Classifier, store *dashboard.Store, d *dispatch.Dispatcher, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("classifier is required")
	}
	if store == nil {
		return fmt.Errorf("store is required")
	}
	if d == nil {
		d = dispatch.New()
	}

	program := tea.NewProgram(
		NewModel(ctx, c, store, d, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("chat screen error: %w", err)
	}
	return nil
}
