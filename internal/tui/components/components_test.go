package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/filter"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/Veraticus/salesdash/internal/tui/tuitest"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []model.SalesRecord {
	return source.FixedRecords()[:3]
}

func TestChartView_Empty(t *testing.T) {
	for _, kind := range chart.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m := NewChartViewModel(themes.Default)
			m.SetDescription(chart.Render(nil, kind, 1024))

			view := ansi.Strip(m.View())
			assert.Equal(t, chart.NoDataMessage, strings.TrimSpace(view))
		})
	}
}

func TestChartView_Bar(t *testing.T) {
	m := NewChartViewModel(themes.Default)
	m.Resize(80, 20)
	m.SetDescription(chart.Render(records(), model.ChartBar, 1024))

	view := ansi.Strip(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "January", "February", "March"))
	assert.Contains(t, view, "24000")
	assert.Contains(t, view, "Sales")
	assert.Contains(t, view, "Revenue")
	assert.LessOrEqual(t, tuitest.MaxLineWidth(view), 80)
}

func TestChartView_Line(t *testing.T) {
	m := NewChartViewModel(themes.Default)
	m.Resize(80, 30)
	m.SetDescription(chart.Render(records(), model.ChartLine, 1024))

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "◆")
	assert.Contains(t, view, "24000")
	assert.True(t, tuitest.ContainsInOrder(view, "Jan", "Feb", "Mar"))
}

func TestChartView_NegativeValues(t *testing.T) {
	refunds := []model.SalesRecord{
		{ID: "1", Month: "January", Sales: 4000, Revenue: 24000},
		{ID: "2", Month: "Refunds", Sales: -500, Revenue: -3000},
	}

	for _, kind := range chart.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m := NewChartViewModel(themes.Default)
			m.Resize(80, 30)
			m.SetDescription(chart.Render(refunds, kind, 1024))

			var view string
			require.NotPanics(t, func() { view = ansi.Strip(m.View()) })
			assert.Contains(t, view, "January")
			assert.Contains(t, view, "Refunds")
		})
	}
}

func TestChartView_Pie(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		contains []string
		grid     bool
	}{
		{
			name:     "normal viewport shows slice labels",
			width:    1024,
			contains: []string{"January: 4000", "February: 3000", "March: 2000"},
		},
		{
			name:     "small viewport shows names and a legend grid",
			width:    320,
			contains: []string{"January", "February", "March", "4000"},
			grid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := chart.Render(records(), model.ChartPie, tt.width)
			require.NotNil(t, desc.Pie)
			assert.Equal(t, tt.grid, len(desc.Pie.LegendGrid) > 0)

			m := NewChartViewModel(themes.Default)
			m.Resize(int(tt.width)/CellWidth, 0)
			m.SetDescription(desc)

			view := ansi.Strip(m.View())
			for _, want := range tt.contains {
				assert.Contains(t, view, want)
			}
			assert.Contains(t, view, pieGlyph)
			if !tt.grid {
				assert.NotContains(t, view, "January 4000")
			}
		})
	}
}

func TestSliceAt(t *testing.T) {
	bounds := []float64{0.25, 0.5, 1}

	tests := []struct {
		name   string
		dx, dy float64
		want   int
	}{
		{"just right of twelve", 0.01, -1, 0},
		{"three o'clock lower half", 0.5, 0.01, 1},
		{"six o'clock", -0.01, 1, 2},
		{"nine o'clock", -1, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceAt(bounds, tt.dx, tt.dy))
		})
	}
}

func TestStatsCards(t *testing.T) {
	m := NewStatsCardsModel(themes.Default)
	m.SetStats(model.AggregateStats{TotalSales: 7000, TotalRevenue: 42000, AverageSales: 3500})

	tests := []struct {
		name    string
		width   int
		stacked bool
	}{
		{"wide", 120, false},
		{"narrow", 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Resize(tt.width)
			view := ansi.Strip(m.View())

			assert.True(t, tuitest.ContainsInOrder(view,
				TotalSalesTitle, TotalRevenueTitle, AverageSalesTitle))
			assert.Contains(t, view, "7,000")
			assert.Contains(t, view, "$42,000")
			assert.Contains(t, view, "3,500")

			sameLine := false
			for _, line := range strings.Split(view, "\n") {
				if strings.Contains(line, TotalSalesTitle) && strings.Contains(line, TotalRevenueTitle) {
					sameLine = true
				}
			}
			assert.Equal(t, !tt.stacked, sameLine)
		})
	}
}

func TestChartSelector(t *testing.T) {
	m := NewChartSelectorModel(themes.Default, model.ChartBar)
	assert.Equal(t, model.ChartLine, m.Next())
	assert.Equal(t, model.ChartPie, m.Prev())

	m.SetCurrent(model.ChartPie)
	assert.Equal(t, model.ChartBar, m.Next())

	view := ansi.Strip(m.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Bar Chart", "Line Chart", "Pie Chart"))
	assert.NotContains(t, view, "▸")

	m.SetFocused(true)
	assert.Contains(t, ansi.Strip(m.View()), "▸")
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Bar Chart", KindLabel(model.ChartBar))
	assert.Equal(t, "Line Chart", KindLabel(model.ChartLine))
	assert.Equal(t, "Pie Chart", KindLabel(model.ChartPie))
}

func TestFilterInput_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"blank means zero", "", 0, false},
		{"whitespace means zero", "   ", 0, false},
		{"integer", "3000", 3000, false},
		{"decimal", "2500.5", 2500.5, false},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, true},
		{"not a number", "lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFilterInputModel(themes.Default)
			m.SetValue(tt.input)

			got, err := m.Threshold()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), filter.ThresholdMessage)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestFilterInput_Editing(t *testing.T) {
	m := NewFilterInputModel(themes.Default)
	assert.True(t, m.Focused())

	for _, msg := range tuitest.Type("12") {
		m, _ = m.Update(msg)
	}
	assert.Equal(t, "12", m.Value())

	m.SetError(filter.ThresholdMessage)
	assert.Contains(t, ansi.Strip(m.View()), filter.ThresholdMessage)

	m, _ = m.Update(tuitest.Key("3"))
	assert.Equal(t, "123", m.Value())
	assert.Empty(t, m.Error())

	m.SetApplying(true)
	m, _ = m.Update(tuitest.Key("4"))
	assert.Equal(t, "123", m.Value())
	view := ansi.Strip(m.View())
	assert.Contains(t, view, ApplyingLabel)
	assert.NotContains(t, view, ApplyLabel)

	m.SetApplying(false)
	m.Reset()
	assert.Empty(t, m.Value())
	assert.Contains(t, ansi.Strip(m.View()), ApplyLabel)
}
