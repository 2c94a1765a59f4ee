package components

import (
	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// KindLabel returns the tab label of a chart kind.
func KindLabel(kind model.ChartKind) string {
	switch kind {
	case model.ChartLine:
		return "Line Chart"
	case model.ChartPie:
		return "Pie Chart"
	default:
		return "Bar Chart"
	}
}

// ChartSelectorModel shows the chart kinds as tabs.
type ChartSelectorModel struct {
	theme    themes.Theme
	current  model.ChartKind
	focused  bool
	disabled bool
}

// NewChartSelectorModel creates the tabs with kind selected.
func NewChartSelectorModel(theme themes.Theme, kind model.ChartKind) ChartSelectorModel {
	return ChartSelectorModel{theme: theme, current: kind}
}

// SetCurrent marks kind as selected.
func (m *ChartSelectorModel) SetCurrent(kind model.ChartKind) {
	m.current = kind
}

// SetFocused marks the tabs as the keyboard target.
func (m *ChartSelectorModel) SetFocused(focused bool) {
	m.focused = focused
}

// SetDisabled greys the tabs out while a filter is being applied.
func (m *ChartSelectorModel) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// Next returns the kind after the current one, wrapping around.
func (m ChartSelectorModel) Next() model.ChartKind {
	return step(m.current, 1)
}

// Prev returns the kind before the current one, wrapping around.
func (m ChartSelectorModel) Prev() model.ChartKind {
	return step(m.current, -1)
}

func step(kind model.ChartKind, delta int) model.ChartKind {
	kinds := chart.Kinds()
	for i, k := range kinds {
		if k == kind {
			return kinds[(i+delta+len(kinds))%len(kinds)]
		}
	}
	return kinds[0]
}

// View renders the tabs.
func (m ChartSelectorModel) View() string {
	kinds := chart.Kinds()
	tabs := make([]string, 0, len(kinds)*2)
	for _, k := range kinds {
		style := m.theme.Tab
		switch {
		case m.disabled:
			style = m.theme.Tab.Inherit(m.theme.Disabled)
		case k == m.current:
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(KindLabel(k)), " ")
	}

	marker := "  "
	if m.focused {
		marker = m.theme.StatusInfo.Render("▸ ")
	}
	return marker + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
