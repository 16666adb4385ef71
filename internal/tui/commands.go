package tui

import (
	"context"

	"github.com/Veraticus/lifedash/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Classifier turns user text into an intent. It must not block forever
// once ctx is done.
type Classifier interface {
	Classify(ctx context.Context, text string) model.Intent
}

func classifyCmd(ctx context.Context, c Classifier, text string) tea.Cmd {
	return func() tea.Msg {
		return classifiedMsg{intent: c.Classify(ctx, text)}
	}
}
