package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/finance-tracker/internal/config"
	"github.com/Veraticus/finance-tracker/internal/entry"
	"github.com/Veraticus/finance-tracker/internal/ledger"
	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const columnGap = 2

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#737373"))
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print totals for a list of entries without the UI",
		Long: `Add entries through the same validation as the entry form and print the
balance, income, expense and history as text. Invalid entries are reported and skipped.`,
		Example: `  tracker report -e "Salary=1000" -e "Coffee=-50"
  tracker report --import ~/Downloads/checking.qfx -e "Cash gift=200"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := cmd.Flags().GetStringArray("entry")
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), appConfig, entries, time.Now, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringArrayP("entry", "e", nil, `entry as "Label=amount", negative for expenses (repeatable)`)

	return cmd
}

// runReport seeds a store from the configured statements, appends every
// valid entry in order and writes the resulting report to out.
func runReport(ctx context.Context, cfg *config.Config, entries []string, now func() time.Time, out, errOut io.Writer) error {
	seed, err := importStatements(ctx, cfg.ImportFiles, errOut)
	if err != nil {
		return err
	}

	store := ledger.NewStore(seed...)
	skipped := 0

	for _, raw := range entries {
		draft := parseEntry(raw)
		txn, err := draft.Submit(now())
		if err != nil {
			skipped++
			slog.Warn("Skipping entry", "entry", raw, "error", err)
			if _, werr := fmt.Fprintf(errOut, "skipping %q: %s\n", raw, entry.Message(err)); werr != nil {
				return fmt.Errorf("failed to write warning: %w", werr)
			}
			continue
		}
		store.Append(txn)
	}

	slog.Info("Report built",
		"transactions", store.Len(),
		"skipped", skipped)

	return writeReport(out, store.Snapshot(), cfg.Currency)
}

// parseEntry splits "Label=amount" at the last '='. Labels may contain '='.
func parseEntry(raw string) entry.Draft {
	idx := strings.LastIndex(raw, "=")
	if idx < 0 {
		return entry.Draft{Label: raw}
	}
	return entry.Draft{
		Label:  raw[:idx],
		Amount: raw[idx+1:],
	}
}

func writeReport(out io.Writer, snap ledger.Snapshot, currency string) error {
	view := viewmodel.NewSummaryView(snap.Summary(), currency)

	totals := [][2]string{
		{"Balance:", view.Balance},
		{"Income:", view.Income},
		{"Expense:", view.Expense},
	}
	totalStyles := []lipgloss.Style{headerStyle, incomeStyle, expenseStyle}

	nameWidth := columnWidth(totals)
	for i, total := range totals {
		line := padRight(total[0], nameWidth) + totalStyles[i].Render(total[1])
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	entries := viewmodel.NewEntryViews(snap.All(), currency)
	if len(entries) == 0 {
		if _, err := fmt.Fprintln(out, mutedStyle.Render("No transactions")); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	rows := make([][2]string, 0, len(entries)+1)
	rows = append(rows, [2]string{"Label", "Amount"})
	for _, e := range entries {
		rows = append(rows, [2]string{e.Label, e.Amount})
	}
	labelWidth := columnWidth(rows)

	// pad before styling: escape codes must not count toward the width
	header := headerStyle.Render(padRight("Label", labelWidth)) + headerStyle.Render("Amount")
	if _, err := fmt.Fprintln(out, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range entries {
		style := mutedStyle
		switch e.Direction {
		case model.DirectionIncome:
			style = incomeStyle
		case model.DirectionExpense:
			style = expenseStyle
		}
		if _, err := fmt.Fprintln(out, padRight(e.Label, labelWidth)+style.Render(e.Amount)); err != nil {
			return fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	return nil
}

// columnWidth returns the display width of the widest first cell plus the
// column gap.
func columnWidth(rows [][2]string) int {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}
	return width + columnGap
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
