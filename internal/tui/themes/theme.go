package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDimmed  lipgloss.Style
	IncomeText    lipgloss.Style
	ExpenseText   lipgloss.Style
	NeutralText   lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	RoundedBox    lipgloss.Style
	FocusedBox    lipgloss.Style
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	income:     "#4ade80",
	expense:    "#f87171",
	primary:    "#7c3aed",
	muted:      "#737373",
	border:     "#404040",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	background: "#1a1a1a",
	errorColor: "#ef4444",
	success:    "#10b981",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	income:     "#a6e3a1",
	expense:    "#f38ba8",
	primary:    "#cba6f7",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	background: "#1e1e2e",
	errorColor: "#f38ba8",
	success:    "#a6e3a1",
})

type palette struct {
	income     string
	expense    string
	primary    string
	muted      string
	border     string
	foreground string
	subtle     string
	background string
	errorColor string
	success    string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)

	return Theme{
		// Colors
		Income:     lipgloss.Color(p.income),
		Expense:    lipgloss.Color(p.expense),
		Primary:    lipgloss.Color(p.primary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: fg,
		Background: lipgloss.Color(p.background),
		Error:      lipgloss.Color(p.errorColor),
		Success:    lipgloss.Color(p.success),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		FocusedLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),

		// Amounts
		IncomeText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.income)).
			Bold(true),
		ExpenseText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.expense)).
			Bold(true),
		NeutralText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),

		// Add button
		Button: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.border)).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.primary)).
			Bold(true).
			Padding(0, 2),
		ButtonDimmed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 2),

		// Status styles
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),

		// Boxes
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
