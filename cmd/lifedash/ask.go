package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/config"
	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <text...>",
		Short: "Classify a request and show which tracker it opens",
		Long: `Classify free text the same way the chat screen does and print the
module it maps to, the extracted details and follow-up suggestions.

Examples:
  lifedash ask "study dsa for 2 hours"
  lifedash ask --explain "log my daily workout and expense"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().Bool("explain", false, "Show the keyword score of every module")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	explain, _ := cmd.Flags().GetBool("explain")
	text := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	classifier, release := newClassifier(cfg)
	defer release()

	in := classifier.Classify(cmd.Context(), text)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", cli.FormatTitle(intent.Title(in.Module)))
	fmt.Fprintf(&b, "Confidence: %.2f\n", in.Confidence)
	if len(in.Parameters) > 0 {
		fmt.Fprintf(&b, "Details:    %s\n", formatParams(in.Parameters))
	}
	fmt.Fprintf(&b, "\n%s %s\n", cli.RobotIcon, intent.Respond(in))
	fmt.Fprintf(&b, "\n%s\n", cli.SubtleStyle.Render("Try next:"))
	for _, s := range intent.Suggestions(in.Module) {
		fmt.Fprintf(&b, "  • %s\n", s)
	}

	if explain {
		scores := intent.Default().Scores(text)
		rows := make([][]string, 0, len(model.AllModules()))
		for _, m := range model.AllModules() {
			if m == model.Welcome {
				continue
			}
			rows = append(rows, []string{m.String(), fmt.Sprintf("%.2f", scores.Score(m))})
		}
		fmt.Fprintf(&b, "\n%s\n", cli.RenderTable([]string{"Module", "Score"}, rows))
		fmt.Fprintf(&b, "Words: %d\n", len(strings.Fields(intent.Normalize(text))))
	}

	_, err = fmt.Fprint(out, b.String())
	return err
}

func formatParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, params[k])
	}
	return strings.Join(parts, " ")
}
