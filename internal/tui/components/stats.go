package components

import (
	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Stat card titles.
const (
	TotalSalesTitle   = "Total Sales"
	TotalRevenueTitle = "Total Revenue"
	AverageSalesTitle = "Average Sales"
)

const cardWidth = 22

// StatsCardsModel shows the statistics of the displayed records as cards.
type StatsCardsModel struct {
	theme themes.Theme
	stats model.AggregateStats
	width int
}

// NewStatsCardsModel creates the stats cards.
func NewStatsCardsModel(theme themes.Theme) StatsCardsModel {
	return StatsCardsModel{theme: theme, width: 80}
}

// SetStats replaces the displayed statistics.
func (m *StatsCardsModel) SetStats(stats model.AggregateStats) {
	m.stats = stats
}

// Resize sets the available width in cells.
func (m *StatsCardsModel) Resize(width int) {
	m.width = width
}

// View renders the cards side by side, or stacked when they do not fit.
func (m StatsCardsModel) View() string {
	cards := []string{
		m.card(TotalSalesTitle, cli.FormatCount(m.stats.TotalSales)),
		m.card(TotalRevenueTitle, cli.FormatCurrency(m.stats.TotalRevenue)),
		m.card(AverageSalesTitle, cli.FormatAverage(m.stats.AverageSales)),
	}

	if m.width < 3*(cardWidth+4) {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2])
}

func (m StatsCardsModel) card(title, value string) string {
	return m.theme.Card.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Subtitle.Render(title),
			m.theme.CardValue.Render(value),
		),
	)
}
