package components

import (
	"fmt"

	"github.com/Veraticus/finance-tracker/internal/summary"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/Veraticus/finance-tracker/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const chartBarRune = '█'

// ChartKeyMap holds the slice selection keys.
type ChartKeyMap struct {
	Left  key.Binding
	Right key.Binding
}

// DefaultChartKeyMap returns the default chart bindings.
func DefaultChartKeyMap() ChartKeyMap {
	return ChartKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev slice"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slice"),
		),
	}
}

// ChartModel shows the income/expense proportion as a split bar with a
// readout for the selected slice.
type ChartModel struct {
	keys     ChartKeyMap
	theme    themes.Theme
	view     viewmodel.SummaryView
	bar      progress.Model
	share    float64
	empty    bool
	selected int
	width    int
	focused  bool
}

// NewChartModel creates a chart for an empty ledger.
func NewChartModel(theme themes.Theme, currency string) ChartModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Income)),
		progress.WithFillCharacters(chartBarRune, chartBarRune),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Expense)

	m := ChartModel{
		keys:  DefaultChartKeyMap(),
		theme: theme,
		bar:   bar,
		width: 40,
	}
	m.SetSummary(summary.Compute(nil), currency)
	return m
}

// Update moves the slice selection when the chart has focus.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.selected = (m.selected + len(m.view.Slices) - 1) % len(m.view.Slices)
		case key.Matches(msg, m.keys.Right):
			m.selected = (m.selected + 1) % len(m.view.Slices)
		}
	}
	return m, nil
}

// View renders the bar, legend and readout.
func (m ChartModel) View() string {
	title := m.theme.Bold.Render("Income vs Expense")
	if m.focused {
		title = m.theme.FocusedLabel.Render("Income vs Expense")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.renderBar(),
		m.renderLegend(),
		m.renderReadout(),
	)
}

func (m ChartModel) renderBar() string {
	bar := m.bar
	bar.Width = max(m.width, 10)

	if m.empty {
		bar.FullColor = string(m.theme.Muted)
		bar.EmptyColor = string(m.theme.Muted)
		return bar.ViewAs(0)
	}
	return bar.ViewAs(m.share)
}

func (m ChartModel) renderLegend() string {
	var parts []string
	for i, slice := range m.view.Slices {
		swatch := lipgloss.NewStyle().Foreground(m.sliceColor(slice.Name)).Render("■")
		text := fmt.Sprintf("%s %s", slice.Name, slice.Value)
		if m.focused && i == m.selected {
			text = m.theme.Bold.Underline(true).Render(text)
		} else {
			text = m.theme.Normal.Render(text)
		}
		parts = append(parts, swatch+" "+text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "   ", parts[1])
}

func (m ChartModel) renderReadout() string {
	if !m.focused {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Tab to the chart to inspect a slice")
	}

	slice, _ := m.Selected()
	return lipgloss.NewStyle().
		Foreground(m.sliceColor(slice.Name)).
		Bold(true).
		Render(fmt.Sprintf("%s: %s (%s)", slice.Name, slice.Value, slice.Percent))
}

func (m ChartModel) sliceColor(name string) lipgloss.Color {
	if name == summary.SliceIncome {
		return m.theme.Income
	}
	return m.theme.Expense
}

// SetSummary replaces the data shown by the chart.
func (m *ChartModel) SetSummary(s summary.Summary, currency string) {
	m.view = viewmodel.NewSummaryView(s, currency)
	m.share = s.IncomeShare()
	m.empty = s.Total().IsZero()
}

// SetKeyMap replaces the chart bindings.
func (m *ChartModel) SetKeyMap(keys ChartKeyMap) {
	m.keys = keys
}

// Selected returns the selected slice.
func (m ChartModel) Selected() (viewmodel.SliceView, int) {
	return m.view.Slices[m.selected], m.selected
}

// Focus gives the chart keyboard focus.
func (m *ChartModel) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *ChartModel) Blur() {
	m.focused = false
}

// Focused reports whether the chart has focus.
func (m ChartModel) Focused() bool {
	return m.focused
}

// Resize updates the bar width.
func (m *ChartModel) Resize(width int) {
	m.width = width
}
