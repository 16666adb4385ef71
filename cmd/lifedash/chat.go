package main

import (
	"io"
	"log/slog"

	"github.com/Veraticus/lifedash/internal/dispatch"
	"github.com/Veraticus/lifedash/internal/tui"
	"github.com/Veraticus/lifedash/internal/tui/themes"
	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive dashboard chat",
		Long: `Open a full-screen chat. Each message is classified and the matching
tracker panel is shown below the conversation.

Keys: Enter sends, Ctrl+R returns to the dashboard, Ctrl+L clears the chat,
Esc or Ctrl+C quits.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	cmd.Flags().String("theme", "default", "Color theme (default, catppuccin-mocha)")

	return cmd
}

func runChat(cmd *cobra.Command, _ []string) error {
	themeName, _ := cmd.Flags().GetString("theme")
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	classifier, release := newClassifier(a.cfg)
	defer release()

	// Log lines would tear the alternate screen.
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer slog.SetDefault(previous)

	return tui.Run(ctx, classifier, a.store, dispatch.New(), tui.WithTheme(themes.GetTheme(themeName)))
}
