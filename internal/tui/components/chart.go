// Package components holds the widgets of the terminal dashboard.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Terminal cell size in pixels, used to map layout sizes onto the character grid.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Glyphs marking series values.
const (
	barGlyph    = "█"
	pieGlyph    = "█"
	swatchGlyph = "■"
)

var pointGlyphs = []string{"●", "◆"}

// ChartViewModel draws a chart description with terminal characters.
type ChartViewModel struct {
	theme  themes.Theme
	desc   chart.Description
	width  int
	height int
}

// NewChartViewModel creates an empty chart view.
func NewChartViewModel(theme themes.Theme) ChartViewModel {
	return ChartViewModel{
		theme: theme,
		desc:  chart.Empty(),
		width: 80,
	}
}

// SetDescription replaces the drawn chart.
func (m *ChartViewModel) SetDescription(d chart.Description) {
	m.desc = d
}

// Resize sets the space available to the chart, in cells. A height of 0 means unbounded.
func (m *ChartViewModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the chart.
func (m ChartViewModel) View() string {
	if m.desc.Empty {
		return lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Center,
			m.theme.Subtitle.Render(m.desc.Message))
	}

	var body string
	switch {
	case m.desc.Pie != nil:
		body = m.renderPie()
	case m.desc.Kind == model.ChartLine:
		body = m.renderLine()
	default:
		body = m.renderBar()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.desc.Title),
		"",
		body,
	)
}

func colored(hex, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func (m ChartViewModel) seriesLegend() string {
	entries := make([]string, len(m.desc.Series))
	for i, s := range m.desc.Series {
		glyph := swatchGlyph
		if m.desc.Kind == model.ChartLine {
			glyph = pointGlyphs[i%len(pointGlyphs)]
		}
		entries[i] = colored(s.Color, glyph) + " " + m.theme.Normal.Render(s.Name)
	}
	return strings.Join(entries, "   ")
}

func (m ChartViewModel) maxValue() float64 {
	top := 0.0
	for _, s := range m.desc.Series {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	return top
}

// renderBar draws one horizontal bar per series for every category.
func (m ChartViewModel) renderBar() string {
	labelWidth := 0
	for _, c := range m.desc.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(c))
	}
	valueWidth := len(chart.FormatValue(m.maxValue()))
	barSpace := max(m.width-labelWidth-valueWidth-3, 4)
	top := m.maxValue()

	var lines []string
	for i, category := range m.desc.Categories {
		for j, s := range m.desc.Series {
			label := ""
			if j == 0 {
				label = category
			}
			n := 0
			if top > 0 {
				n = max(int(math.Round(s.Values[i]/top*float64(barSpace))), 0)
			}
			lines = append(lines, fmt.Sprintf("%-*s %s %s",
				labelWidth, label,
				colored(s.Color, strings.Repeat(barGlyph, n)),
				m.theme.Subtitle.Render(chart.FormatValue(s.Values[i]))))
		}
	}
	lines = append(lines, "", m.seriesLegend())
	return strings.Join(lines, "\n")
}

func (m ChartViewModel) plotRows() int {
	rows := m.desc.Height/CellHeight - 8
	if m.height > 0 {
		rows = min(rows, m.height-6)
	}
	return max(rows, 5)
}

// renderLine plots every series on a shared grid, one column group per category.
func (m ChartViewModel) renderLine() string {
	n := len(m.desc.Categories)
	top := m.maxValue()
	axisWidth := len(chart.FormatValue(top))
	colWidth := max((m.width-axisWidth-2)/max(n, 1), 3)
	rows := m.plotRows()

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, n)
	}
	for j, s := range m.desc.Series {
		glyph := colored(s.Color, pointGlyphs[j%len(pointGlyphs)])
		for i, v := range s.Values {
			row := rows - 1
			if top > 0 {
				row = int(math.Round((1 - v/top) * float64(rows-1)))
			}
			// Values below zero sit on the baseline.
			row = min(max(row, 0), rows-1)
			grid[row][i] = glyph
		}
	}

	var lines []string
	for r, cells := range grid {
		axis := strings.Repeat(" ", axisWidth)
		switch r {
		case 0:
			axis = fmt.Sprintf("%*s", axisWidth, chart.FormatValue(top))
		case rows - 1:
			axis = fmt.Sprintf("%*s", axisWidth, "0")
		}

		var b strings.Builder
		b.WriteString(m.theme.Subtitle.Render(axis))
		b.WriteString(" │")
		for _, cell := range cells {
			if cell == "" {
				b.WriteString(strings.Repeat(" ", colWidth))
				continue
			}
			pad := (colWidth - 1) / 2
			b.WriteString(strings.Repeat(" ", pad) + cell + strings.Repeat(" ", colWidth-pad-1))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, strings.Repeat(" ", axisWidth)+" └"+strings.Repeat("─", colWidth*n))

	var labels strings.Builder
	labels.WriteString(strings.Repeat(" ", axisWidth+2))
	for _, c := range m.desc.Categories {
		label := c
		if len(label) > colWidth-1 {
			label = label[:max(colWidth-1, 1)]
		}
		labels.WriteString(lipgloss.PlaceHorizontal(colWidth, lipgloss.Center, label))
	}
	lines = append(lines, m.theme.Subtitle.Render(labels.String()), "", m.seriesLegend())
	return strings.Join(lines, "\n")
}

// renderPie draws the slices as a filled disc sized by the layout's outer radius, with the
// legend placed the way the layout asks.
func (m ChartViewModel) renderPie() string {
	pie := m.desc.Pie
	disc := m.renderDisc()

	legend := make([]string, len(pie.Slices))
	for i, s := range pie.Slices {
		text := s.Label
		if pie.Layout.ShowLabels && s.Text != "" {
			text = s.Text
		}
		legend[i] = colored(s.Color, swatchGlyph) + " " + m.theme.Normal.Render(text)
	}

	if pie.Layout.Legend.Layout == chart.LegendVertical {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			disc,
			"    ",
			lipgloss.JoinVertical(lipgloss.Left, legend...),
		)
	}

	parts := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, disc),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, wrapEntries(legend, m.width)),
	}
	if len(pie.LegendGrid) > 0 {
		parts = append(parts, "", m.renderLegendGrid())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m ChartViewModel) renderDisc() string {
	pie := m.desc.Pie
	rCols := max(pie.Layout.OuterRadius/CellWidth, 2)
	rRows := max(rCols/2, 1)

	total := m.desc.Total()
	bounds := make([]float64, len(pie.Slices))
	acc := 0.0
	for i, s := range pie.Slices {
		if total > 0 {
			acc += s.Value / total
		}
		bounds[i] = acc
	}

	lines := make([]string, 0, 2*rRows+1)
	for y := -rRows; y <= rRows; y++ {
		var b strings.Builder
		for x := -rCols; x <= rCols; x++ {
			dx := float64(x) / float64(rCols)
			dy := float64(y) / float64(rRows)
			if dx*dx+dy*dy > 1 {
				b.WriteByte(' ')
				continue
			}
			if total <= 0 {
				b.WriteString(m.theme.Subtitle.Render("░"))
				continue
			}
			b.WriteString(colored(pie.Slices[sliceAt(bounds, dx, dy)].Color, pieGlyph))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// sliceAt returns the slice under a point, slices running clockwise from twelve o'clock.
func sliceAt(bounds []float64, dx, dy float64) int {
	theta := math.Atan2(dx, -dy)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	frac := theta / (2 * math.Pi)
	for i, b := range bounds {
		if frac < b {
			return i
		}
	}
	return len(bounds) - 1
}

func (m ChartViewModel) renderLegendGrid() string {
	cellWidth := 0
	for _, e := range m.desc.Pie.LegendGrid {
		cellWidth = max(cellWidth, lipgloss.Width(e.Label)+len(chart.FormatValue(e.Value))+5)
	}
	perRow := max(m.width/max(cellWidth, 1), 1)

	var rows []string
	var row []string
	for i, e := range m.desc.Pie.LegendGrid {
		cell := colored(e.Color, swatchGlyph) + " " +
			m.theme.Normal.Render(e.Label) + " " +
			m.theme.Subtitle.Render(chart.FormatValue(e.Value))
		row = append(row, lipgloss.NewStyle().Width(cellWidth).Render(cell))
		if len(row) == perRow || i == len(m.desc.Pie.LegendGrid)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// wrapEntries joins entries on lines no wider than width.
func wrapEntries(entries []string, width int) string {
	var lines []string
	var line string
	for _, e := range entries {
		switch {
		case line == "":
			line = e
		case lipgloss.Width(line)+3+lipgloss.Width(e) > width:
			lines = append(lines, line)
			line = e
		default:
			line += "   " + e
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
