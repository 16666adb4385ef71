package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/spf13/cobra"
)

const fitnessBarWidth = 20

func fitnessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fitness",
		Short: "Track daily fitness goals",
		Long: `Daily targets for steps, workouts, water and sleep.

Goals can be addressed by id or by type, so "lifedash fitness set water 6"
updates today's water goal.`,
	}

	cmd.AddCommand(fitnessListCmd())
	cmd.AddCommand(fitnessAddCmd())
	cmd.AddCommand(fitnessSetCmd())
	cmd.AddCommand(fitnessDeleteCmd())

	return cmd
}

func fitnessListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show fitness goals and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			goals := a.store.FitnessGoals()
			if len(goals) == 0 {
				_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No fitness goals. Use 'lifedash fitness add' to set one."))
				return err
			}

			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				rows = append(rows, []string{
					shortID(g.ID),
					string(g.Type),
					fmt.Sprintf("%g / %g %s", g.Current, g.Target, g.Unit),
					cli.ProgressBar(float64(g.Percent())/100, fitnessBarWidth),
					fmt.Sprintf("%d%%", g.Percent()),
				})
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n", cli.FormatTitle("Fitness Goals"),
				cli.RenderTable([]string{"ID", "Goal", "Progress", "", ""}, rows))
			return err
		},
	}
}

func fitnessAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "add <type> <target>",
		Short:     "Set a new fitness goal",
		Example:   `  lifedash fitness add steps 12000`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"steps", "workout", "water", "sleep"},
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString("unit")

			goalType, err := parseGoalType(args[0])
			if err != nil {
				return err
			}
			target, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			g, err := a.store.AddFitnessGoal(cmd.Context(), model.FitnessGoal{
				Type:   goalType,
				Target: target,
				Unit:   unit,
			})
			if err != nil {
				return common.NewUserError("could not add fitness goal", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("New %s goal: %g %s [%s]", g.Type, g.Target, g.Unit, shortID(g.ID))))
			return err
		},
	}

	cmd.Flags().String("unit", "", "Unit label (defaults per type)")

	return cmd
}

func fitnessSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id|type> <current>",
		Short: "Record progress on a fitness goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveGoal(args[0], a.store.FitnessGoals())
			if !ok {
				return notFound("fitness goal", args[0])
			}

			g, found, err := a.store.SetFitnessProgress(cmd.Context(), id, current)
			if err != nil {
				return common.NewUserError("could not record progress", err)
			}
			if !found {
				return notFound("fitness goal", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("%s: %g / %g %s (%d%%)", g.Type, g.Current, g.Target, g.Unit, g.Percent())))
			return err
		},
	}
}

func fitnessDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id|type>",
		Aliases: []string{"rm"},
		Short:   "Delete a fitness goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveGoal(args[0], a.store.FitnessGoals())
			if !ok {
				return notFound("fitness goal", args[0])
			}
			if _, err := a.store.DeleteFitnessGoal(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted fitness goal "+shortID(id)))
			return err
		},
	}
}

// resolveGoal matches ref against goal ids first, then against goal types.
// A type picks the most recent goal of that type.
func resolveGoal(ref string, goals []model.FitnessGoal) (string, bool) {
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	if id, ok := resolveID(ref, ids); ok {
		return id, true
	}

	goalType := model.FitnessGoalType(strings.ToLower(ref))
	for i := len(goals) - 1; i >= 0; i-- {
		if goals[i].Type == goalType {
			return goals[i].ID, true
		}
	}
	return "", false
}

func parseGoalType(s string) (model.FitnessGoalType, error) {
	t := model.FitnessGoalType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", common.NewUserError(fmt.Sprintf("unknown goal type %q (want steps, workout, water or sleep)", s), nil)
	}
	return t, nil
}

func parseQuantity(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || v < 0 {
		return 0, common.NewUserError(fmt.Sprintf("invalid number %q", s), err)
	}
	return v, nil
}
