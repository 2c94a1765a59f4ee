package tuitest

import tea "github.com/charmbracelet/bubbletea"

// Key creates a key press for a single printable key such as "b" or "?".
func Key(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// Type returns one key press per rune of text.
func Type(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// Named keys.
var (
	Enter     = tea.KeyMsg{Type: tea.KeyEnter}
	Esc       = tea.KeyMsg{Type: tea.KeyEsc}
	Tab       = tea.KeyMsg{Type: tea.KeyTab}
	Left      = tea.KeyMsg{Type: tea.KeyLeft}
	Right     = tea.KeyMsg{Type: tea.KeyRight}
	Backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	CtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	CtrlX     = tea.KeyMsg{Type: tea.KeyCtrlX}
)

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}
