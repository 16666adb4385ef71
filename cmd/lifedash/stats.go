package main

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/lifedash/internal/analytics"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"analytics"},
		Short:   "Show productivity analytics",
		Long: `📊 Productivity Analytics

Completed tasks, study hours, money in and out, habit streaks and the overall
productivity score, plus the last seven days of activity.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().Int("width", 0, "Render for this terminal width")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	width, _ := cmd.Flags().GetInt("width")

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	report := analytics.BuildReport(a.store.Snapshot(), a.store.Now())
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	formatter := analytics.NewFormatter()
	if width > 0 {
		formatter = formatter.WithWidth(width)
	}
	_, err = fmt.Fprintln(out, formatter.FormatReport(report))
	return err
}
