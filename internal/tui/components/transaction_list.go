package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/Veraticus/finance-tracker/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListKeyMap holds the scrolling keys.
type ListKeyMap struct {
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultListKeyMap returns the default list bindings.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
	}
}

// TransactionListModel renders the transactions, newest first.
type TransactionListModel struct {
	keys   ListKeyMap
	theme  themes.Theme
	items  []viewmodel.EntryView
	offset int
	width  int
	height int
}

// NewTransactionList creates an empty transaction list.
func NewTransactionList(theme themes.Theme) TransactionListModel {
	return TransactionListModel{
		keys:   DefaultListKeyMap(),
		theme:  theme,
		width:  40,
		height: 10,
	}
}

// Update handles scrolling keys.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.PageDown):
			m.scroll(m.pageSize())
		case key.Matches(msg, m.keys.PageUp):
			m.scroll(-m.pageSize())
		}
	}
	return m, nil
}

// View renders the list.
func (m TransactionListModel) View() string {
	title := m.theme.Bold.Render("History")

	if len(m.items) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Italic(true).Render("No transactions yet"),
		)
	}

	end := min(m.offset+m.pageSize(), len(m.items))
	rows := make([]string, 0, end-m.offset+2)
	rows = append(rows, title)

	for _, item := range m.items[m.offset:end] {
		rows = append(rows, m.renderRow(item))
	}

	if footer := m.renderFooter(end); footer != "" {
		rows = append(rows, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m TransactionListModel) renderRow(item viewmodel.EntryView) string {
	color := m.directionColor(item.Direction)
	amountStyle := m.amountStyle(item.Direction)

	// border (1) + padding (1) + gap (1)
	labelWidth := max(m.width-lipgloss.Width(item.Amount)-3, 4)
	label := viewmodel.TruncateString(item.Label, labelWidth)
	gap := strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0)+1)

	line := m.theme.Normal.Render(label) + gap + amountStyle.Render(item.Amount)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1).
		Render(line)
}

func (m TransactionListModel) renderFooter(end int) string {
	if m.offset == 0 && end == len(m.items) {
		return ""
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
		fmt.Sprintf("%d-%d of %d (PgUp/PgDn)", m.offset+1, end, len(m.items)))
}

func (m TransactionListModel) directionColor(d model.Direction) lipgloss.Color {
	switch d {
	case model.DirectionIncome:
		return m.theme.Income
	case model.DirectionExpense:
		return m.theme.Expense
	default:
		return m.theme.Muted
	}
}

func (m TransactionListModel) amountStyle(d model.Direction) lipgloss.Style {
	switch d {
	case model.DirectionIncome:
		return m.theme.IncomeText
	case model.DirectionExpense:
		return m.theme.ExpenseText
	default:
		return m.theme.NeutralText
	}
}

func (m TransactionListModel) pageSize() int {
	// title and footer take a line each
	return max(m.height-2, 1)
}

func (m *TransactionListModel) scroll(delta int) {
	maxOffset := max(len(m.items)-m.pageSize(), 0)
	m.offset = min(max(m.offset+delta, 0), maxOffset)
}

// SetKeyMap replaces the list bindings.
func (m *TransactionListModel) SetKeyMap(keys ListKeyMap) {
	m.keys = keys
}

// SetItems replaces the rows and scrolls back to the newest entry.
func (m *TransactionListModel) SetItems(items []viewmodel.EntryView) {
	m.items = items
	m.offset = 0
}

// Items returns the rows currently held by the list.
func (m TransactionListModel) Items() []viewmodel.EntryView {
	return m.items
}

// Offset returns the index of the first visible row.
func (m TransactionListModel) Offset() int {
	return m.offset
}

// Resize updates the component size.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.scroll(0)
}
