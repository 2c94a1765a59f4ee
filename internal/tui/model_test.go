package tui

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/filter"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/Veraticus/salesdash/internal/tui/components"
	"github.com/Veraticus/salesdash/internal/tui/tuitest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loaded returns a model that has received the built-in records.
func loaded(t *testing.T, r *tuitest.TestRenderer, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithApplyLatency(0), WithSize(120, 60)}, opts...)
	m := New(opts...)
	out := r.Send(m, tuitest.WindowSize(120, 60), dataLoadedMsg{records: source.FixedRecords()})
	return out.(Model)
}

// apply types threshold, presses enter and completes the pending filter.
func apply(t *testing.T, r *tuitest.TestRenderer, m Model, threshold string) Model {
	t.Helper()
	msgs := append([]tea.Msg{}, tuitest.Type(threshold)...)
	out := r.Send(m, msgs...)
	out, cmd := r.Update(out, tuitest.Enter)
	return r.Run(out, cmd).(Model)
}

func TestModel_Loading(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := New(WithSize(80, 24))

	assert.NotNil(t, m.Init())
	assert.Contains(t, tuitest.NormalizeWhitespace(ansi.Strip(m.View())), "Loading sales data...")

	// Keys other than force quit are ignored until data arrives.
	out := r.Send(m, tuitest.Key("b"))
	assert.False(t, out.(Model).ready)
}

// A failing source falls back to the built-in records.
func TestModel_LoadFromSource(t *testing.T) {
	r := tuitest.NewTestRenderer()
	ds := source.NewDataSource(source.FetcherFunc(func(context.Context) ([]model.SalesRecord, error) {
		return nil, errors.New("connection refused")
	}))
	m := New(WithSource(ds), WithApplyLatency(0))

	out := r.Run(m, loadRecords(ds))
	got := out.(Model)

	require.True(t, got.ready)
	assert.Equal(t, "8 of 8 records displayed", got.controller.Summary())
	assert.Contains(t, r.Plain(), "Sales Dashboard")
	assert.Contains(t, r.Plain(), "8 of 8 records displayed")
}

func TestModel_ApplyFilter(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "3000")

	assert.Equal(t, "4 of 8 records displayed", m.controller.Summary())
	threshold, ok := m.controller.Threshold()
	assert.True(t, ok)
	assert.InDelta(t, 3000, threshold, 0.001)
	assert.False(t, m.applying)

	view := r.Plain()
	assert.Contains(t, view, "4 of 8 records displayed")
	assert.Contains(t, view, "14,690")
	assert.Contains(t, view, "$88,140")
	assert.NotContains(t, view, "March")
}

func TestModel_RejectsInvalidThreshold(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"negative", "-1"},
		{"not a number", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tuitest.NewTestRenderer()
			m := loaded(t, r)
			m = r.Send(m, tuitest.Type(tt.input)...).(Model)

			out, cmd := r.Update(m, tuitest.Enter)
			got := out.(Model)

			assert.Nil(t, cmd)
			assert.False(t, got.applying)
			assert.Equal(t, filter.ThresholdMessage, got.filter.Error())
			assert.Equal(t, "8 of 8 records displayed", got.controller.Summary())
			assert.Contains(t, r.Plain(), filter.ThresholdMessage)
		})
	}
}

func TestModel_PendingFilter(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := loaded(t, r, WithApplyLatency(DefaultApplyLatency))
	m = r.Send(m, tuitest.Type("3000")...).(Model)

	out, cmd := r.Update(m, tuitest.Enter)
	require.NotNil(t, cmd)
	pending := out.(Model)
	assert.True(t, pending.applying)
	assert.Contains(t, r.Plain(), components.ApplyingLabel)

	// A second apply and chart switches are ignored while pending.
	out, cmd = r.Update(pending, tuitest.Enter)
	assert.Nil(t, cmd)
	out = r.Send(out, tuitest.Tab, tuitest.Key("p"))
	assert.Equal(t, model.ChartBar, out.(Model).controller.Kind())
	assert.Equal(t, "8 of 8 records displayed", out.(Model).controller.Summary())

	out = r.Send(out, filterAppliedMsg{threshold: 3000})
	done := out.(Model)
	assert.False(t, done.applying)
	assert.Equal(t, "4 of 8 records displayed", done.controller.Summary())
	assert.Contains(t, r.Plain(), components.ApplyLabel)
}

func TestModel_EmptyResult(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "100000")

	assert.Equal(t, "0 of 8 records displayed", m.controller.Summary())
	assert.Contains(t, r.Plain(), chart.NoDataMessage)

	for _, k := range []string{"l", "p"} {
		m = r.Send(m, tuitest.Tab, tuitest.Key(k)).(Model)
		assert.Contains(t, r.Plain(), chart.NoDataMessage)
		m = r.Send(m, tuitest.Tab).(Model)
	}
}

func TestModel_ClearFilter(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "3000")

	m = r.Send(m, tuitest.CtrlX).(Model)

	assert.Equal(t, "8 of 8 records displayed", m.controller.Summary())
	assert.Empty(t, m.filter.Value())
	_, ok := m.controller.Threshold()
	assert.False(t, ok)
	assert.Contains(t, r.Plain(), "March")
}

func TestModel_SelectChart(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want model.ChartKind
	}{
		{"pie by letter", []tea.Msg{tuitest.Key("p")}, model.ChartPie},
		{"line by number", []tea.Msg{tuitest.Key("2")}, model.ChartLine},
		{"next", []tea.Msg{tuitest.Right}, model.ChartLine},
		{"previous wraps", []tea.Msg{tuitest.Left}, model.ChartPie},
		{"back to bar", []tea.Msg{tuitest.Key("p"), tuitest.Key("b")}, model.ChartBar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tuitest.NewTestRenderer()
			m := r.Send(loaded(t, r), tuitest.Tab).(Model)
			require.Equal(t, focusChart, m.focus)

			m = r.Send(m, tt.keys...).(Model)

			assert.Equal(t, tt.want, m.controller.Kind())
			assert.Contains(t, r.Plain(), m.controller.Chart().Title)
		})
	}
}

func TestModel_ChartKeysTypeWhileFilterFocused(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := r.Send(loaded(t, r), tuitest.Key("p")).(Model)

	assert.Equal(t, model.ChartBar, m.controller.Kind())
	assert.Equal(t, "p", m.filter.Value())
}

func TestModel_FilterSurvivesChartSwitch(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "3000")
	m = r.Send(m, tuitest.Tab, tuitest.Key("p")).(Model)

	assert.Equal(t, model.ChartPie, m.controller.Kind())
	assert.Equal(t, "4 of 8 records displayed", m.controller.Summary())
	assert.Len(t, m.controller.Chart().Pie.Slices, 4)
}

func TestModel_ToggleField(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := r.Send(loaded(t, r), tuitest.Tab, tuitest.Key("p"), tuitest.Key("f")).(Model)

	assert.Equal(t, model.FieldRevenue, m.controller.Field())
	assert.Contains(t, r.Plain(), "pie: revenue")

	m = r.Send(m, tuitest.Key("f")).(Model)
	assert.Equal(t, model.FieldSales, m.controller.Field())
}

func TestModel_ResizeSwitchesPieLayout(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := r.Send(loaded(t, r), tuitest.Tab, tuitest.Key("p")).(Model)
	require.Equal(t, chart.LegendVertical, m.controller.Chart().Pie.Layout.Legend.Layout)

	// 60 columns is 480px, below the breakpoint.
	m = r.Send(m, tuitest.WindowSize(60, 60)).(Model)
	pie := m.controller.Chart().Pie
	assert.Equal(t, chart.ViewportSmall, pie.Viewport)
	assert.NotEqual(t, chart.LegendVertical, pie.Layout.Legend.Layout)
	assert.NotEmpty(t, pie.LegendGrid)
}

func TestModel_LogsFilterEvents(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "3000")

	logs := buf.String()
	assert.Contains(t, logs, "Filtered sales data")
	assert.Contains(t, logs, "threshold=3000")
	assert.Contains(t, logs, "count=4")

	r.Send(m, tuitest.CtrlX)

	logs = buf.String()
	assert.Equal(t, 2, strings.Count(logs, "Filtered sales data"))
	assert.Contains(t, logs, "threshold=0")
	assert.Contains(t, logs, "count=8")
}

func TestModel_ReloadKeepsFilter(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := apply(t, r, loaded(t, r), "3000")
	m = r.Send(m, tuitest.Tab, tuitest.Key("l")).(Model)

	m = r.Send(m, dataLoadedMsg{records: source.FixedRecords()}).(Model)

	assert.Equal(t, model.ChartLine, m.controller.Kind())
	assert.Equal(t, "4 of 8 records displayed", m.controller.Summary())
}

func TestModel_Focus(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := loaded(t, r)
	assert.Equal(t, focusFilter, m.focus)

	m = r.Send(m, tuitest.Esc).(Model)
	assert.Equal(t, focusChart, m.focus)
	assert.False(t, m.filter.Focused())

	m = r.Send(m, tuitest.Key("/")).(Model)
	assert.Equal(t, focusFilter, m.focus)
	assert.True(t, m.filter.Focused())
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"ctrl+c from filter", []tea.Msg{tuitest.CtrlC}},
		{"q from chart", []tea.Msg{tuitest.Tab, tuitest.Key("q")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tuitest.NewTestRenderer()
			m := loaded(t, r)
			for _, k := range tt.keys[:len(tt.keys)-1] {
				m = r.Send(m, k).(Model)
			}

			out, cmd := r.Update(m, tt.keys[len(tt.keys)-1])
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, out.(Model).quitting)
			assert.Empty(t, out.View())
		})
	}
}

func TestModel_Help(t *testing.T) {
	r := tuitest.NewTestRenderer()
	m := r.Send(loaded(t, r), tuitest.Tab).(Model)
	assert.NotContains(t, r.Plain(), "reload data")

	r.Send(m, tuitest.Key("?"))
	assert.Contains(t, r.Plain(), "reload data")
}
