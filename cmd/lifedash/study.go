package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/spf13/cobra"
)

func studyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Manage study tasks",
		Long: `📚 Study Planner

Plan study sessions by subject and topic, track their status and see how many
hours you have put in.`,
	}

	cmd.AddCommand(studyListCmd())
	cmd.AddCommand(studyAddCmd())
	cmd.AddCommand(studyStatusCmd("start", "Mark a study task as in progress", model.StatusInProgress))
	cmd.AddCommand(studyStatusCmd("done", "Mark a study task as completed", model.StatusCompleted))
	cmd.AddCommand(studyDeleteCmd())

	return cmd
}

func studyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pendingOnly, _ := cmd.Flags().GetBool("pending")

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			tasks := a.store.StudyTasks()
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				if pendingOnly && t.Status == model.StatusCompleted {
					continue
				}
				due := "-"
				if !t.DueDate.IsZero() {
					due = t.DueDate.Format(dateLayout)
				}
				rows = append(rows, []string{
					shortID(t.ID),
					t.Subject,
					t.Topic,
					fmt.Sprintf("%d min", t.Duration),
					string(t.Priority),
					string(t.Status),
					due,
				})
			}

			if len(rows) == 0 {
				_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No study tasks yet. Use 'lifedash study add' to plan one."))
				return err
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n", cli.FormatTitle("Study Tasks"),
				cli.RenderTable([]string{"ID", "Subject", "Topic", "Duration", "Priority", "Status", "Due"}, rows))
			return err
		},
	}

	cmd.Flags().Bool("pending", false, "Hide completed tasks")

	return cmd
}

func studyAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <subject> <topic...>",
		Short: "Plan a new study task",
		Example: `  lifedash study add DSA "binary trees" --duration 90 --priority high
  lifedash study add Physics optics --due 2024-06-01`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, _ := cmd.Flags().GetInt("duration")
			priority, _ := cmd.Flags().GetString("priority")
			dueFlag, _ := cmd.Flags().GetString("due")

			p := model.Priority(strings.ToLower(priority))
			if !p.Valid() {
				return common.NewUserError(fmt.Sprintf("unknown priority %q (want low, medium or high)", priority), nil)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			due, err := parseDate(dueFlag, a.store.Now())
			if err != nil {
				return err
			}

			task, err := a.store.AddStudyTask(cmd.Context(), model.StudyTask{
				Subject:  args[0],
				Topic:    strings.Join(args[1:], " "),
				Duration: duration,
				Priority: p,
				DueDate:  due,
			})
			if err != nil {
				return common.NewUserError("could not add study task", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Planned %s: %s (%d min) [%s]", task.Subject, task.Topic, task.Duration, shortID(task.ID))))
			return err
		},
	}

	cmd.Flags().IntP("duration", "d", 60, "Planned duration in minutes")
	cmd.Flags().StringP("priority", "p", string(model.PriorityMedium), "Priority (low, medium, high)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD, today, yesterday)")

	return cmd
}

func studyStatusCmd(use, short string, status model.TaskStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], studyTaskIDs(a.store.StudyTasks()))
			if !ok {
				return notFound("study task", args[0])
			}

			task, found, err := a.store.UpdateStudyTask(cmd.Context(), id, model.StudyTaskPatch{Status: &status})
			if err != nil {
				return err
			}
			if !found {
				return notFound("study task", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("%s: %s is now %s", task.Subject, task.Topic, task.Status)))
			return err
		},
	}
}

func studyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a study task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], studyTaskIDs(a.store.StudyTasks()))
			if !ok {
				return notFound("study task", args[0])
			}
			if _, err := a.store.DeleteStudyTask(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted study task "+shortID(id)))
			return err
		},
	}
}

func studyTaskIDs(tasks []model.StudyTask) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
