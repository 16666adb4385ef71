package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/schollz/progressbar/v3"
)

// ErrInputTerminated is returned when input ends before a valid answer.
var ErrInputTerminated = errors.New("input terminated")

// Prompter asks the user questions on a terminal.
type Prompter struct {
	writer   io.Writer
	reader   *LineReader
	progress *progressbar.ProgressBar
	reviewed int
	skipped  int
}

// NewPrompter creates a prompter. Nil arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

// Confirm asks a yes/no question. An empty answer means no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	choice, err := p.promptChoice(ctx, question+" [y/N]", []string{"y", "yes", "n", "no", ""})
	if err != nil {
		return false, err
	}
	return choice == "y" || choice == "yes", nil
}

// Ask reads free text. An empty answer returns def.
func (p *Prompter) Ask(ctx context.Context, label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	if _, err := fmt.Fprintf(p.writer, "%s: ", FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// StartReview announces how many imported records will be reviewed and
// starts the progress bar.
func (p *Prompter) StartReview(total int) {
	p.reviewed = 0
	p.skipped = 0
	p.progress = newProgressBar(p.writer, total, "Reviewing transactions...")
}

// ReviewExpense shows one imported expense and lets the user keep it, change
// its category or skip it. The bool result is false when skipped.
func (p *Prompter) ReviewExpense(ctx context.Context, e model.Expense) (model.Expense, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Expense{}, false, err
	}
	p.advance()

	if _, err := fmt.Fprintln(p.writer, RenderBox("Imported Transaction", formatExpense(e))); err != nil {
		return model.Expense{}, false, fmt.Errorf("failed to write transaction box: %w", err)
	}

	options := []string{
		fmt.Sprintf("  [A] Keep category: %s", SuccessStyle.Render(e.Category)),
		"  [C] Enter a different category",
		"  [S] Skip this transaction",
	}
	if _, err := fmt.Fprintln(p.writer, strings.Join(options, "\n")+"\n"); err != nil {
		return model.Expense{}, false, fmt.Errorf("failed to write options: %w", err)
	}

	choice, err := p.promptChoice(ctx, "Choice", []string{"a", "c", "s"})
	if err != nil {
		return model.Expense{}, false, err
	}

	switch choice {
	case "c":
		category, err := p.Ask(ctx, "Category", e.Category)
		if err != nil {
			return model.Expense{}, false, err
		}
		e.Category = strings.ToLower(strings.TrimSpace(category))
	case "s":
		p.skipped++
		return e, false, nil
	}

	p.reviewed++
	return e, true, nil
}

// FinishReview prints the review summary.
func (p *Prompter) FinishReview() {
	if p.progress != nil {
		if err := p.progress.Finish(); err != nil {
			slog.Warn("Failed to finish progress bar", "error", err)
		}
	}
	summary := fmt.Sprintf("Kept %d, skipped %d", p.reviewed, p.skipped)
	if _, err := fmt.Fprintln(p.writer, FormatSuccess(summary)); err != nil {
		slog.Warn("Failed to write review summary", "error", err)
	}
}

func (p *Prompter) advance() {
	if p.progress == nil {
		return
	}
	if err := p.progress.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

func formatExpense(e model.Expense) string {
	sign := "-"
	if e.Type == model.ExpenseTypeIncome {
		sign = "+"
	}
	return fmt.Sprintf("%s %s\n", InfoIcon, TitleStyle.Render(e.Description)) +
		fmt.Sprintf("  Date:     %s\n", e.Date.Format("Jan 2, 2006")) +
		fmt.Sprintf("  Amount:   %s$%.2f\n", sign, e.Amount) +
		fmt.Sprintf("  Type:     %s", e.Type)
}

func (p *Prompter) promptChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	for {
		if _, err := fmt.Fprintf(p.writer, "%s: ", FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(input)
		for _, valid := range validChoices {
			if choice == valid {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Invalid choice. Please try again.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	line, err := p.reader.ReadLine(ctx)
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		return "", ErrInputTerminated
	case errors.Is(err, ErrInputCancelled):
		return "", ctx.Err()
	default:
		return "", err
	}
}

// Progress reports progress of a batch operation such as an import.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress starts a progress bar for total items on w.
func NewProgress(w io.Writer, total int, description string) *Progress {
	return &Progress{bar: newProgressBar(w, total, description)}
}

// Add advances the bar by n.
func (p *Progress) Add(n int) {
	if err := p.bar.Add(n); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish fills the bar.
func (p *Progress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}

func newProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[magenta]=[reset]",
			SaucerHead:    "[magenta]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
