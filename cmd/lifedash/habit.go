package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/spf13/cobra"
)

func habitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits"},
		Short:   "Track habits and streaks",
		Long: `🎯 Habit Tracker

Mark habits done each day to build streaks. A streak counts consecutive days
ending today or yesterday.`,
	}

	cmd.AddCommand(habitListCmd())
	cmd.AddCommand(habitAddCmd())
	cmd.AddCommand(habitDoneCmd())
	cmd.AddCommand(habitDeleteCmd())

	return cmd
}

func habitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with their streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			habits := a.store.Habits()
			if len(habits) == 0 {
				_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No habits yet. Use 'lifedash habit add' to start one."))
				return err
			}

			now := a.store.Now()
			rows := make([][]string, 0, len(habits))
			for _, h := range habits {
				today := ""
				if h.CompletedOn(now) {
					today = cli.SuccessIcon
				}
				rows = append(rows, []string{
					shortID(h.ID),
					h.Name,
					string(h.Frequency),
					fmt.Sprintf("%s %d", cli.FireIcon, h.CurrentStreak),
					fmt.Sprintf("%d", h.LongestStreak),
					today,
				})
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n", cli.FormatTitle("Habits"),
				cli.RenderTable([]string{"ID", "Habit", "Frequency", "Streak", "Best", "Today"}, rows))
			return err
		},
	}
}

func habitAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <name...>",
		Short:   "Start tracking a habit",
		Example: `  lifedash habit add morning run --description "5k before work"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frequency, _ := cmd.Flags().GetString("frequency")
			target, _ := cmd.Flags().GetInt("target")
			description, _ := cmd.Flags().GetString("description")

			f := model.Frequency(strings.ToLower(frequency))
			if !f.Valid() {
				return common.NewUserError(fmt.Sprintf("unknown frequency %q (want daily or weekly)", frequency), nil)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			h, err := a.store.AddHabit(cmd.Context(), model.Habit{
				Name:        strings.Join(args, " "),
				Description: description,
				Frequency:   f,
				TargetCount: target,
			})
			if err != nil {
				return common.NewUserError("could not add habit", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Tracking %s (%s) [%s]", h.Name, h.Frequency, shortID(h.ID))))
			return err
		},
	}

	cmd.Flags().String("frequency", string(model.FrequencyDaily), "How often (daily, weekly)")
	cmd.Flags().Int("target", 1, "Completions per period")
	cmd.Flags().String("description", "", "Optional description")

	return cmd
}

func habitDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a habit done for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dateFlag, _ := cmd.Flags().GetString("date")

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], habitIDs(a.store.Habits()))
			if !ok {
				return notFound("habit", args[0])
			}
			date, err := parseDate(dateFlag, a.store.Now())
			if err != nil {
				return err
			}

			h, found, err := a.store.CompleteHabit(cmd.Context(), id, date)
			if err != nil {
				return err
			}
			if !found {
				return notFound("habit", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s done %s %d day streak (best %d)",
				h.Name, cli.FireIcon, h.CurrentStreak, h.LongestStreak)))
			return err
		},
	}

	cmd.Flags().String("date", "", "Day to mark (YYYY-MM-DD, today, yesterday; default today)")

	return cmd
}

func habitDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a habit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], habitIDs(a.store.Habits()))
			if !ok {
				return notFound("habit", args[0])
			}
			if _, err := a.store.DeleteHabit(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted habit "+shortID(id)))
			return err
		},
	}
}

func habitIDs(habits []model.Habit) []string {
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	return ids
}
