package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Filter
	Apply       key.Binding
	Clear       key.Binding
	FocusFilter key.Binding
	Blur        key.Binding

	// Chart
	NextChart   key.Binding
	PrevChart   key.Binding
	Bar         key.Binding
	Line        key.Binding
	Pie         key.Binding
	ToggleField key.Binding

	// Application
	NextFocus key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "apply filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", "clear filter"),
		),
		FocusFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit threshold"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "leave input"),
		),

		NextChart: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next chart"),
		),
		PrevChart: key.NewBinding(
			key.WithKeys("left", "N"),
			key.WithHelp("←/N", "previous chart"),
		),
		Bar: key.NewBinding(
			key.WithKeys("b", "1"),
			key.WithHelp("b", "bar chart"),
		),
		Line: key.NewBinding(
			key.WithKeys("l", "2"),
			key.WithHelp("l", "line chart"),
		),
		Pie: key.NewBinding(
			key.WithKeys("p", "3"),
			key.WithHelp("p", "pie chart"),
		),
		ToggleField: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "pie: sales/revenue"),
		),

		NextFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "switch focus"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload data"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Clear, k.NextFocus, k.Help, k.ForceQuit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Apply, k.Clear, k.FocusFilter, k.Blur},
		{k.NextChart, k.PrevChart, k.Bar, k.Line, k.Pie},
		{k.ToggleField, k.Refresh, k.NextFocus},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
