package components

import (
	"github.com/Veraticus/finance-tracker/internal/entry"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormField identifies a focusable control of the entry form.
type FormField int

// Form fields in focus order.
const (
	FieldLabel FormField = iota
	FieldAmount
	FieldButton
)

// String returns a string representation of the field.
func (f FormField) String() string {
	switch f {
	case FieldLabel:
		return "Label"
	case FieldAmount:
		return "Amount"
	case FieldButton:
		return "Button"
	default:
		return "Unknown"
	}
}

const (
	amountCharLimit = 32
	addButtonText   = "Add Transaction"
)

// FormKeyMap holds the keys the form reacts to itself.
type FormKeyMap struct {
	Submit key.Binding
}

// DefaultFormKeyMap returns the default form bindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "add"),
		),
	}
}

// FormModel is the transaction entry form.
type FormModel struct {
	keys      FormKeyMap
	theme     themes.Theme
	errText   string
	label     textinput.Model
	amount    textinput.Model
	focus     FormField
	width     int
	active    bool
	submitted bool
}

// NewFormModel creates an empty form with the label field focused.
func NewFormModel(theme themes.Theme) FormModel {
	label := textinput.New()
	label.Placeholder = "Enter label..."
	label.CharLimit = entry.MaxLabelLength
	label.Prompt = ""

	amount := textinput.New()
	amount.Placeholder = "Enter amount... (- for expense)"
	amount.CharLimit = amountCharLimit
	amount.Prompt = ""

	m := FormModel{
		keys:   DefaultFormKeyMap(),
		theme:  theme,
		label:  label,
		amount: amount,
		width:  40,
	}
	m.active = true
	m.label.Focus()
	return m
}

// Init returns the cursor blink command.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the focused field.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Submit) {
		switch m.focus {
		case FieldLabel:
			return m, m.SetFocus(FieldAmount)
		case FieldAmount, FieldButton:
			m.submitted = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FieldLabel:
		m.label, cmd = m.label.Update(msg)
	case FieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	}

	// editing clears a stale validation message
	if _, ok := msg.(tea.KeyMsg); ok && m.focus != FieldButton {
		m.errText = ""
	}

	return m, cmd
}

// View renders the form.
func (m FormModel) View() string {
	rows := []string{
		m.renderField("Label", m.label, FieldLabel),
		m.renderField("Amount", m.amount, FieldAmount),
		m.renderButton(),
	}

	if m.errText != "" {
		rows = append(rows, m.theme.StatusError.Render("✗ "+m.errText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m FormModel) renderField(name string, input textinput.Model, field FormField) string {
	labelStyle := m.theme.Label
	box := m.theme.RoundedBox
	if m.active && m.focus == field {
		labelStyle = m.theme.FocusedLabel
		box = m.theme.FocusedBox
	}

	input.Width = max(m.width-4, 10)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(name),
		box.Width(max(m.width-2, 12)).Render(input.View()),
	)
}

func (m FormModel) renderButton() string {
	style := m.theme.Button
	switch {
	case !m.Draft().CanSubmit():
		style = m.theme.ButtonDimmed
	case m.active && m.focus == FieldButton:
		style = m.theme.ButtonFocused
	}

	button := style.Render(addButtonText)
	if m.active && m.focus == FieldButton {
		button = "▸ " + button
	} else {
		button = "  " + button
	}
	return button
}

// SetKeyMap replaces the form bindings.
func (m *FormModel) SetKeyMap(keys FormKeyMap) {
	m.keys = keys
}

// SetFocus moves focus to field and activates the form.
func (m *FormModel) SetFocus(field FormField) tea.Cmd {
	m.active = true
	m.focus = field
	m.label.Blur()
	m.amount.Blur()

	switch field {
	case FieldLabel:
		return m.label.Focus()
	case FieldAmount:
		return m.amount.Focus()
	default:
		return nil
	}
}

// Blur deactivates the form, for example when the chart takes focus.
func (m *FormModel) Blur() {
	m.active = false
	m.label.Blur()
	m.amount.Blur()
}

// Focused returns the focused field and whether the form is active.
func (m FormModel) Focused() (FormField, bool) {
	return m.focus, m.active
}

// Draft returns the raw buffer contents.
func (m FormModel) Draft() entry.Draft {
	return entry.Draft{
		Label:  m.label.Value(),
		Amount: m.amount.Value(),
	}
}

// State returns the form state derived from the buffers.
func (m FormModel) State() entry.State {
	return m.Draft().State()
}

// IsSubmitted reports whether the user asked to add the draft.
func (m FormModel) IsSubmitted() bool {
	return m.submitted
}

// Accept clears both buffers after a successful add and returns focus to the label.
func (m *FormModel) Accept() tea.Cmd {
	m.submitted = false
	m.errText = ""
	m.label.Reset()
	m.amount.Reset()
	return m.SetFocus(FieldLabel)
}

// Reject keeps the buffers and shows the validation message for err.
func (m *FormModel) Reject(err error) {
	m.submitted = false
	m.errText = entry.Message(err)
}

// ErrorText returns the inline validation message, if any.
func (m FormModel) ErrorText() string {
	return m.errText
}

// SetValues replaces the buffer contents.
func (m *FormModel) SetValues(label, amount string) {
	m.label.SetValue(label)
	m.amount.SetValue(amount)
}

// Resize updates the component width.
func (m *FormModel) Resize(width int) {
	m.width = width
}
