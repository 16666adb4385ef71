package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/Veraticus/lifedash/internal/analytics"
	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/ofx"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import expenses from OFX/QFX bank statements",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.

Debits become expenses and credits become income. Categories are guessed from
the merchant name. Transactions already imported (same bank transaction id)
are skipped, so re-importing an overlapping statement is safe.`,
		Example: `  # Import a single file
  lifedash import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import every statement in a directory
  lifedash import-ofx ~/Downloads/*.qfx

  # Go through each transaction before saving
  lifedash import-ofx --review ~/Downloads/ally.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().BoolP("review", "r", false, "Confirm or recategorize each transaction")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	review, _ := cmd.Flags().GetBool("review")
	out := cmd.OutOrStdout()

	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	interrupts := cli.NewInterruptHandler(out, "Import", "Nothing was saved.")
	ctx = interrupts.HandleInterrupts(ctx)

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("Importing OFX files", "file_count", len(files), "dry_run", dryRun)

	parser := ofx.NewParser(slog.Default())
	progress := cli.NewProgress(out, len(files), "Parsing statements")

	var parsed []model.Expense
	for _, path := range files {
		expenses, err := parseStatement(ctx, parser, path)
		progress.Add(1)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Error("Failed to parse OFX file", "file", path, "error", err)
			continue
		}
		parsed = append(parsed, expenses...)
	}
	progress.Finish()

	fresh, skipped := ofx.FilterNew(a.store.Expenses(), parsed)
	slog.Info("Parsed transactions", "found", len(parsed), "new", len(fresh), "duplicates", skipped)

	if len(fresh) == 0 {
		_, err := fmt.Fprintln(out, cli.InfoStyle.Render(
			fmt.Sprintf("No new transactions (%d already imported).", skipped)))
		return err
	}

	if review {
		fresh, err = reviewExpenses(ctx, cmd.InOrStdin(), out, fresh)
		if err != nil {
			if interrupts.WasInterrupted() {
				return nil
			}
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", summarizeImport(fresh)); err != nil {
		return err
	}

	if dryRun {
		_, err := fmt.Fprintln(out, cli.FormatInfo("Dry run, nothing saved."))
		return err
	}
	if len(fresh) == 0 {
		return nil
	}

	saved, err := a.store.AddExpenses(ctx, fresh)
	if err != nil {
		return common.NewUserError("could not save imported expenses", err)
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d duplicates skipped)", len(saved), skipped)))
	return err
}

// expandFiles resolves glob patterns. Arguments matching nothing are kept
// when they name an existing file.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, common.NewUserError(fmt.Sprintf("invalid pattern %s", pattern), err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}

	if len(files) == 0 {
		return nil, common.NewUserError("no files found to import", nil)
	}
	return files, nil
}

func parseStatement(ctx context.Context, parser *ofx.Parser, path string) ([]model.Expense, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	expenses, err := parser.ParseFile(ctx, f)
	if err != nil {
		return nil, err
	}
	slog.Debug("Processed file", "file", filepath.Base(path), "transactions", len(expenses))
	return expenses, nil
}

func reviewExpenses(ctx context.Context, in io.Reader, out io.Writer, expenses []model.Expense) ([]model.Expense, error) {
	prompter := cli.NewPrompter(in, out)
	prompter.StartReview(len(expenses))

	kept := make([]model.Expense, 0, len(expenses))
	for i, e := range expenses {
		reviewed, keep, err := prompter.ReviewExpense(ctx, e)
		if errors.Is(err, cli.ErrInputTerminated) {
			// Out of input: keep the remainder as parsed.
			slog.Debug("Review input ended, keeping remaining transactions", "remaining", len(expenses)-i)
			kept = append(kept, expenses[i:]...)
			break
		}
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, reviewed)
		}
	}
	prompter.FinishReview()
	return kept, nil
}

func summarizeImport(expenses []model.Expense) string {
	var spent, earned float64
	byCategory := make(map[string]int)
	for _, e := range expenses {
		if e.Type == model.ExpenseTypeIncome {
			earned += e.Amount
		} else {
			spent += e.Amount
		}
		byCategory[e.Category]++
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c, fmt.Sprintf("%d", byCategory[c])})
	}

	return cli.RenderBox(fmt.Sprintf("%d transactions", len(expenses)),
		fmt.Sprintf("Spent %s · Earned %s\n\n%s",
			analytics.FormatCurrency(spent), analytics.FormatCurrency(earned),
			cli.RenderTable([]string{"Category", "Count"}, rows)))
}
