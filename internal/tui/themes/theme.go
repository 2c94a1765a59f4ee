// Package themes holds the color schemes of the terminal dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Disabled      lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Card          lipgloss.Style
	CardValue     lipgloss.Style
	Input         lipgloss.Style
	FocusedInput  lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#3b82f6",
	secondary:  "#10b981",
	success:    "#10b981",
	warning:    "#f59e0b",
	errorColor: "#ef4444",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
	highlight:  "#262626",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#89b4fa",
	secondary:  "#a6e3a1",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	errorColor: "#f38ba8",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
	highlight:  "#313244",
})

type palette struct {
	primary, secondary, success, warning, errorColor string
	foreground, subtle, border, muted, highlight      string
}

func newTheme(p palette) Theme {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }

	return Theme{
		Primary:    c(p.primary),
		Secondary:  c(p.secondary),
		Success:    c(p.success),
		Error:      c(p.errorColor),
		Foreground: c(p.foreground),
		Border:     c(p.border),
		Muted:      c(p.muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.foreground)),
		Subtitle: lipgloss.NewStyle().
			Foreground(c(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(c(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.foreground)),
		Selected: lipgloss.NewStyle().
			Background(c(p.primary)).
			Foreground(c(p.foreground)).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(c(p.muted)).
			Italic(true),

		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(c(p.subtle)).
			Background(c(p.highlight)),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(c(p.foreground)).
			Background(c(p.primary)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.border)).
			Padding(0, 2),
		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.primary)),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c(p.border)).
			Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c(p.primary)).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c(p.border)).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(c(p.success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(c(p.warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(c(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(c(p.primary)).
			Bold(true),
	}
}

// Names lists the selectable theme names.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
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
