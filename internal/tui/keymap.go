package tui

import (
	"github.com/Veraticus/finance-tracker/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts. The components receive their
// bindings from here so the help bar always matches their behavior.
type KeyMap struct {
	// Focus
	Next key.Binding
	Prev key.Binding

	// Actions
	Submit key.Binding
	Left   key.Binding
	Right  key.Binding

	// List
	PageUp   key.Binding
	PageDown key.Binding

	// Application
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	form := components.DefaultFormKeyMap()
	chart := components.DefaultChartKeyMap()
	list := components.DefaultListKeyMap()

	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous"),
		),
		Submit:   form.Submit,
		Left:     chart.Left,
		Right:    chart.Right,
		PageUp:   list.PageUp,
		PageDown: list.PageDown,
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "quit"),
		),
	}
}

// FormKeys returns the bindings handled by the entry form.
func (k KeyMap) FormKeys() components.FormKeyMap {
	return components.FormKeyMap{Submit: k.Submit}
}

// ChartKeys returns the bindings handled by the chart.
func (k KeyMap) ChartKeys() components.ChartKeyMap {
	return components.ChartKeyMap{Left: k.Left, Right: k.Right}
}

// ListKeys returns the bindings handled by the transaction list.
func (k KeyMap) ListKeys() components.ListKeyMap {
	return components.ListKeyMap{PageUp: k.PageUp, PageDown: k.PageDown}
}

// ShortHelp returns key bindings for the short help view. Scrolling keys
// are shown by the list footer instead.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Left, k.Right, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Left, k.Right},
		{k.PageUp, k.PageDown},
		{k.Quit},
	}
}
