package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved versions of the dashboard",
		Long: `Every change is saved as a new version. The most recent versions are kept
(storage.history_limit) and any of them can be restored.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 10, "How many versions to show")
	cmd.AddCommand(historyRestoreCmd())

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return common.NewUserError("--limit must be positive", nil)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	revisions, err := a.storage.History(cmd.Context(), a.key, limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(revisions) == 0 {
		_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No saved versions yet."))
		return err
	}

	rows := make([][]string, 0, len(revisions))
	for _, rev := range revisions {
		rows = append(rows, []string{
			strconv.FormatInt(rev.ID, 10),
			rev.SavedAt.Local().Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(rev.Snapshot.StudyTasks)),
			strconv.Itoa(len(rev.Snapshot.Expenses)),
			strconv.Itoa(len(rev.Snapshot.Habits)),
			strconv.Itoa(len(rev.Snapshot.FitnessGoals)),
		})
	}

	_, err = fmt.Fprintf(out, "%s\n\n%s\n", cli.FormatTitle("Saved Versions"),
		cli.RenderTable([]string{"Version", "Saved", "Tasks", "Expenses", "Habits", "Goals"}, rows))
	return err
}

func historyRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <version>",
		Short: "Make a saved version the current dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid version %q", args[0]), err)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			snap, err := a.storage.Restore(cmd.Context(), a.key, id)
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("no saved version %d", id), err)
			}
			if err != nil {
				return fmt.Errorf("failed to restore version %d: %w", id, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Restored version %d: %d tasks, %d expenses, %d habits",
				id, len(snap.StudyTasks), len(snap.Expenses), len(snap.Habits))))
			return err
		},
	}
}
