package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// minChartHeight is the fewest rows the chart box is given.
const minChartHeight = 8

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}
	return m.renderDashboard()
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Sales Dashboard"),
		"",
		m.spinner.View()+" "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading sales data..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderDashboard() string {
	width := max(m.width, 20)

	header := m.renderHeader()
	filterPanel := m.filter.View()
	tabs := m.selector.View()

	stats := m.stats
	stats.SetStats(m.controller.Stats())
	stats.Resize(width)
	cards := stats.View()

	m.help.Width = width
	helpView := m.help.View(m.keymap)
	status := m.renderStatusBar(width)

	used := lipgloss.Height(header) + lipgloss.Height(filterPanel) + lipgloss.Height(tabs) +
		lipgloss.Height(cards) + lipgloss.Height(helpView) + lipgloss.Height(status) + 2
	chartHeight := max(m.height-used, minChartHeight)

	view := m.chartView
	view.SetDescription(m.controller.Chart())
	// Border and padding take two columns and two rows on each axis.
	view.Resize(width-4, chartHeight-2)
	chartBox := m.theme.BorderedBox.Width(width - 2).Render(view.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		filterPanel,
		"",
		tabs,
		chartBox,
		cards,
		helpView,
		status,
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Sales Dashboard"),
		m.theme.Subtitle.Render(m.controller.Summary()),
	)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar(width int) string {
	left := "Filter"
	if m.focus == focusChart {
		left = "Chart"
	}
	if m.applying {
		left = "Applying"
	}

	var center string
	if t, ok := m.controller.Threshold(); ok {
		center = fmt.Sprintf("sales ≥ %s", formatThreshold(t))
	}

	right := "pie: " + string(m.controller.Field())

	spacing := max(width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right)-2, 2)
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := m.theme.StatusInfo.Render(left) +
		strings.Repeat(" ", leftPad) +
		m.theme.Normal.Render(center) +
		strings.Repeat(" ", rightPad) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right)

	return m.theme.Normal.
		Background(m.theme.Border).
		Width(width).
		MaxWidth(width).
		Render(status)
}

func formatThreshold(t float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
}
