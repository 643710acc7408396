// Package tui implements the single-screen interactive tracker.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/finance-tracker/internal/ledger"
	"github.com/Veraticus/finance-tracker/internal/tui/components"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/Veraticus/finance-tracker/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies the control receiving key input.
type Focus int

// Focus order for Tab.
const (
	FocusLabel Focus = iota
	FocusAmount
	FocusButton
	FocusChart
)

const focusCount = 4

// String returns a string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusLabel:
		return "Label"
	case FocusAmount:
		return "Amount"
	case FocusButton:
		return "Button"
	case FocusChart:
		return "Chart"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// Model holds the main TUI state. The store is the only owner of the
// transactions; everything else is derived from its latest snapshot.
type Model struct {
	theme    themes.Theme
	store    *ledger.Store
	keymap   KeyMap
	help     help.Model
	status   string
	summary  viewmodel.SummaryView
	config   Config
	form     components.FormModel
	chart    components.ChartModel
	list     components.TransactionListModel
	width    int
	height   int
	quitting bool
}

// New creates a model with the given options.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		config: cfg,
		theme:  cfg.Theme,
		keymap: cfg.KeyMap,
		help:   help.New(),
		store:  ledger.NewStore(cfg.Seed...),
		form:   components.NewFormModel(cfg.Theme),
		chart:  components.NewChartModel(cfg.Theme, cfg.Currency),
		list:   components.NewTransactionList(cfg.Theme),
		width:  cfg.Width,
		height: cfg.Height,
	}

	m.form.SetKeyMap(m.keymap.FormKeys())
	m.chart.SetKeyMap(m.keymap.ChartKeys())
	m.list.SetKeyMap(m.keymap.ListKeys())

	m.handleResize()
	m.refresh(m.store.Snapshot())
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.chart.Focused() {
		m.chart, cmd = m.chart.Update(msg)
		return m, cmd
	}

	m.form, cmd = m.form.Update(msg)
	if m.form.IsSubmitted() {
		cmd = tea.Batch(cmd, m.submit())
	}

	return m, cmd
}

// handleGlobalKeys handles keys that work regardless of focus.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keymap.Next):
		return m.setFocus((m.Focus() + 1) % focusCount), true
	case key.Matches(msg, m.keymap.Prev):
		return m.setFocus((m.Focus() + focusCount - 1) % focusCount), true
	case key.Matches(msg, m.keymap.PageUp, m.keymap.PageDown):
		m.list, _ = m.list.Update(msg)
		return nil, true
	}
	return nil, false
}

// submit validates the form draft and, when valid, adds it to the store.
// An invalid draft leaves both the store and the buffers untouched.
func (m *Model) submit() tea.Cmd {
	draft := m.form.Draft()

	txn, err := draft.Submit(m.config.Now())
	if err != nil {
		slog.Debug("Rejected entry",
			"state", draft.State().String(),
			"error", err)
		m.form.Reject(err)
		m.status = ""
		return nil
	}

	m.refresh(m.store.Append(txn))
	m.status = fmt.Sprintf("Added %s %s", txn.Label, viewmodel.FormatSigned(txn.Amount, m.config.Currency))
	return m.form.Accept()
}

// refresh recomputes every derived value from snap.
func (m *Model) refresh(snap ledger.Snapshot) {
	sum := snap.Summary()
	m.summary = viewmodel.NewSummaryView(sum, m.config.Currency)
	m.chart.SetSummary(sum, m.config.Currency)
	m.list.SetItems(viewmodel.NewEntryViews(snap.All(), m.config.Currency))
}

// setFocus moves keyboard focus to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == FocusChart {
		m.form.Blur()
		m.chart.Focus()
		return nil
	}

	m.chart.Blur()
	switch f {
	case FocusAmount:
		return m.form.SetFocus(components.FieldAmount)
	case FocusButton:
		return m.form.SetFocus(components.FieldButton)
	default:
		return m.form.SetFocus(components.FieldLabel)
	}
}

// Focus returns the control that currently receives key input.
func (m Model) Focus() Focus {
	if m.chart.Focused() {
		return FocusChart
	}

	field, _ := m.form.Focused()
	switch field {
	case components.FieldAmount:
		return FocusAmount
	case components.FieldButton:
		return FocusButton
	default:
		return FocusLabel
	}
}

// Snapshot returns the current contents of the store.
func (m Model) Snapshot() ledger.Snapshot {
	return m.store.Snapshot()
}

// FormError returns the inline validation message, if any.
func (m Model) FormError() string {
	return m.form.ErrorText()
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	width := m.contentWidth()

	m.form.Resize(width)
	m.chart.Resize(width)
	m.help.Width = width
	m.list.Resize(width, max(m.height-fixedRows, minListRows))
}
