package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/lifedash/internal/analytics"
	"github.com/Veraticus/lifedash/internal/cli"
	"github.com/Veraticus/lifedash/internal/common"
	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/Veraticus/lifedash/internal/tui/themes"
	"github.com/spf13/cobra"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"expenses", "money"},
		Short:   "Track expenses and income",
		Long: `💰 Expense Tracker

Record money going out and coming in. Categories are guessed from the
description when not given.`,
	}

	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseUpdateCmd())
	cmd.AddCommand(expenseDeleteCmd())

	return cmd
}

func expenseListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses and income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			category = strings.ToLower(strings.TrimSpace(category))

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			var (
				rows          [][]string
				spent, earned float64
			)
			for _, e := range a.store.Expenses() {
				if category != "" && e.Category != category {
					continue
				}
				amount := analytics.FormatCurrency(e.Amount)
				if e.Type == model.ExpenseTypeIncome {
					earned += e.Amount
					amount = "+" + amount
				} else {
					spent += e.Amount
					amount = "-" + amount
				}
				rows = append(rows, []string{
					shortID(e.ID),
					e.Date.Format(dateLayout),
					themes.GetCategoryIcon(e.Category) + " " + e.Category,
					amount,
					e.Description,
				})
			}

			if len(rows) == 0 {
				_, err := fmt.Fprintln(out, cli.InfoStyle.Render("No expenses yet. Use 'lifedash expense add' to record one."))
				return err
			}

			_, err = fmt.Fprintf(out, "%s\n\n%s\n\n%s\n",
				cli.FormatTitle("Expenses"),
				cli.RenderTable([]string{"ID", "Date", "Category", "Amount", "Description"}, rows),
				cli.SubtleStyle.Render(fmt.Sprintf("Spent %s · Earned %s · Balance %s",
					analytics.FormatCurrency(spent), analytics.FormatCurrency(earned), analytics.FormatCurrency(earned-spent))))
			return err
		},
	}

	cmd.Flags().StringP("category", "c", "", "Only show this category")

	return cmd
}

func expenseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <amount> [description...]",
		Short: "Record an expense or income",
		Example: `  lifedash expense add 12.50 lunch at the cafe
  lifedash expense add 1500 salary --type income
  lifedash expense add 40 --category transport --date yesterday --tag work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			kind, _ := cmd.Flags().GetString("type")
			dateFlag, _ := cmd.Flags().GetString("date")
			tags, _ := cmd.Flags().GetStringSlice("tag")

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			expenseType := model.ExpenseType(strings.ToLower(kind))
			if !expenseType.Valid() {
				return common.NewUserError(fmt.Sprintf("unknown type %q (want expense or income)", kind), nil)
			}
			description := strings.Join(args[1:], " ")
			if category == "" && expenseType == model.ExpenseTypeExpense {
				category, _ = intent.MatchCategory(description)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			date, err := parseDate(dateFlag, a.store.Now())
			if err != nil {
				return err
			}

			e, err := a.store.AddExpense(cmd.Context(), model.Expense{
				Amount:      amount,
				Type:        expenseType,
				Category:    category,
				Description: description,
				Date:        date,
				Tags:        tags,
			})
			if err != nil {
				return common.NewUserError("could not record expense", err)
			}

			verb := "Spent"
			if e.Type == model.ExpenseTypeIncome {
				verb = "Earned"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s %s on %s %s [%s]",
				verb, analytics.FormatCurrency(e.Amount), themes.GetCategoryIcon(e.Category), e.Category, shortID(e.ID))))
			return err
		},
	}

	cmd.Flags().StringP("category", "c", "", "Category (guessed from the description when empty)")
	cmd.Flags().StringP("type", "t", string(model.ExpenseTypeExpense), "Entry type (expense, income)")
	cmd.Flags().String("date", "", "Date (YYYY-MM-DD, today, yesterday; default now)")
	cmd.Flags().StringSlice("tag", nil, "Tag to attach (repeatable)")

	return cmd
}

func expenseUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], expenseIDs(a.store.Expenses()))
			if !ok {
				return notFound("expense", args[0])
			}

			patch, err := expensePatchFromFlags(cmd, a.store.Now)
			if err != nil {
				return err
			}

			e, found, err := a.store.UpdateExpense(cmd.Context(), id, patch)
			if err != nil {
				return common.NewUserError("could not update expense", err)
			}
			if !found {
				return notFound("expense", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated %s: %s %s on %s",
				shortID(e.ID), e.Type, analytics.FormatCurrency(e.Amount), e.Category)))
			return err
		},
	}

	cmd.Flags().String("amount", "", "New amount")
	cmd.Flags().StringP("category", "c", "", "New category")
	cmd.Flags().StringP("type", "t", "", "New type (expense, income)")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("date", "", "New date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringSlice("tag", nil, "Replace the tags (repeatable)")

	return cmd
}

// expensePatchFromFlags builds a patch from the flags the user actually set.
func expensePatchFromFlags(cmd *cobra.Command, now func() time.Time) (model.ExpensePatch, error) {
	var patch model.ExpensePatch
	flags := cmd.Flags()

	if flags.Changed("amount") {
		raw, _ := flags.GetString("amount")
		amount, err := parseAmount(raw)
		if err != nil {
			return patch, err
		}
		patch.Amount = &amount
	}
	if flags.Changed("category") {
		category, _ := flags.GetString("category")
		patch.Category = &category
	}
	if flags.Changed("type") {
		raw, _ := flags.GetString("type")
		t := model.ExpenseType(strings.ToLower(raw))
		if !t.Valid() {
			return patch, common.NewUserError(fmt.Sprintf("unknown type %q (want expense or income)", raw), nil)
		}
		patch.Type = &t
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		patch.Description = &description
	}
	if flags.Changed("date") {
		raw, _ := flags.GetString("date")
		date, err := parseDate(raw, now())
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	if flags.Changed("tag") {
		patch.Tags, _ = flags.GetStringSlice("tag")
	}
	return patch, nil
}

func expenseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			id, ok := resolveID(args[0], expenseIDs(a.store.Expenses()))
			if !ok {
				return notFound("expense", args[0])
			}
			if _, err := a.store.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted expense "+shortID(id)))
			return err
		},
	}
}

// parseAmount accepts "12.50", "$12.50" and "1,200".
func parseAmount(s string) (float64, error) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	amount, err := strconv.ParseFloat(clean, 64)
	if err != nil || amount <= 0 {
		return 0, common.NewUserError(fmt.Sprintf("invalid amount %q (want a positive number)", s), err)
	}
	return amount, nil
}

func expenseIDs(entries []model.Expense) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
