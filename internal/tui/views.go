package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	minContentWidth = 30
	maxContentWidth = 72

	// rows used by everything except the list
	fixedRows   = 28
	minListRows = 3
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Finance Tracker"),
		m.renderTotals(),
		"",
		m.chart.View(),
		"",
		m.form.View(),
	}

	if m.status != "" {
		sections = append(sections, m.theme.StatusSuccess.Render("✓ "+m.status))
	}

	sections = append(sections, "", m.list.View())

	if m.config.ShowHelp {
		sections = append(sections, "", m.help.View(m.keymap))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTotals renders the balance line and the income/expense line.
func (m Model) renderTotals() string {
	balanceStyle := m.theme.Bold
	if m.summary.BalanceNegative {
		balanceStyle = m.theme.ExpenseText
	}

	balance := m.theme.Label.Render("Balance ") + balanceStyle.Render(m.summary.Balance)

	flows := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.theme.Label.Render("Income "),
		m.theme.IncomeText.Render(m.summary.Income),
		"   ",
		m.theme.Label.Render("Expense "),
		m.theme.ExpenseText.Render(m.summary.Expense),
	)

	return lipgloss.JoinVertical(lipgloss.Left, balance, flows)
}

// contentWidth is the terminal width minus padding, clamped to a readable range.
func (m Model) contentWidth() int {
	return min(max(m.width-4, minContentWidth), maxContentWidth)
}
