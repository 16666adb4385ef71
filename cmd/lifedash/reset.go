package main

import (
	"fmt"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all dashboard data",
		Long: `Reset removes every study task, expense and habit and restores the default
fitness goals.

The cleared dashboard is saved like any other change, so 'lifedash history'
can still bring the old data back. Use --purge to drop the history as well.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	cmd.Flags().Bool("purge", false, "Also delete the saved history")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	purge, _ := cmd.Flags().GetBool("purge")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.store.Snapshot()
	records := len(snap.StudyTasks) + len(snap.Expenses) + len(snap.Habits)
	if records == 0 && !purge {
		_, err := fmt.Fprintln(out, "Dashboard is already empty. Nothing to reset.")
		return err
	}

	if !force {
		if _, err := fmt.Fprintf(out, "This will delete %d study tasks, %d expenses and %d habits.\n",
			len(snap.StudyTasks), len(snap.Expenses), len(snap.Habits)); err != nil {
			return err
		}
		ok, err := cli.NewPrompter(cmd.InOrStdin(), out).Confirm(ctx, "Are you sure you want to continue?")
		if err != nil {
			return err
		}
		if !ok {
			_, err := fmt.Fprintln(out, "Reset canceled.")
			return err
		}
	}

	if purge {
		if err := a.storage.Delete(ctx, a.key); err != nil {
			return fmt.Errorf("failed to purge history: %w", err)
		}
	}
	if err := a.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset dashboard: %w", err)
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess("Dashboard reset"))
	return err
}
