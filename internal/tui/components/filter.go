package components

import (
	"strconv"
	"strings"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/filter"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button labels of the filter panel.
const (
	ApplyLabel    = "Apply Filter"
	ApplyingLabel = "Applying..."
	ClearLabel    = "Clear Filter"
)

// FilterInputModel is the threshold input with its apply and clear controls.
type FilterInputModel struct {
	theme    themes.Theme
	errMsg   string
	input    textinput.Model
	applying bool
}

// NewFilterInputModel creates an empty, focused threshold input.
func NewFilterInputModel(theme themes.Theme) FilterInputModel {
	ti := textinput.New()
	ti.Placeholder = "Enter sales threshold"
	ti.Prompt = "Minimum sales: "
	ti.CharLimit = 16
	ti.Width = 22
	ti.Focus()

	return FilterInputModel{
		theme: theme,
		input: ti,
	}
}

// Update forwards input events to the text field. Editing clears a shown error.
func (m FilterInputModel) Update(msg tea.Msg) (FilterInputModel, tea.Cmd) {
	if m.applying {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.errMsg = ""
	}
	return m, cmd
}

// Threshold parses the input. Blank input means 0.
func (m FilterInputModel) Threshold() (float64, error) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, common.NewUserError(filter.ThresholdMessage, err)
	}
	if err := filter.Validate(v); err != nil {
		return 0, err
	}
	return v, nil
}

// Value returns the raw input text.
func (m FilterInputModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text.
func (m *FilterInputModel) SetValue(s string) {
	m.input.SetValue(s)
}

// SetError shows msg under the input.
func (m *FilterInputModel) SetError(msg string) {
	m.errMsg = msg
}

// Error returns the shown error message.
func (m FilterInputModel) Error() string {
	return m.errMsg
}

// Reset empties the input and hides any error.
func (m *FilterInputModel) Reset() {
	m.input.SetValue("")
	m.errMsg = ""
}

// SetApplying switches the controls into their pending state.
func (m *FilterInputModel) SetApplying(applying bool) {
	m.applying = applying
}

// Applying reports whether a filter is being applied.
func (m FilterInputModel) Applying() bool {
	return m.applying
}

// Focus gives the input keyboard focus.
func (m *FilterInputModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *FilterInputModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has keyboard focus.
func (m FilterInputModel) Focused() bool {
	return m.input.Focused()
}

// View renders the input, the buttons and the error line.
func (m FilterInputModel) View() string {
	box := m.theme.Input
	if m.input.Focused() {
		box = m.theme.FocusedInput
	}

	apply := m.theme.ActiveTab.Render(ApplyLabel)
	clearBtn := m.theme.Tab.Render(ClearLabel)
	if m.applying {
		apply = m.theme.Tab.Inherit(m.theme.Disabled).Render(ApplyingLabel)
		clearBtn = m.theme.Tab.Inherit(m.theme.Disabled).Render(ClearLabel)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(m.input.View()),
		"  ",
		apply,
		" ",
		clearBtn,
	)
	if m.errMsg == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, m.theme.StatusError.Render(m.errMsg))
}
