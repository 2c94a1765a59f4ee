// Package tui implements the interactive terminal sales dashboard.
package tui

import (
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/Veraticus/salesdash/internal/tui/components"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme      themes.Theme
	source     *source.DataSource
	controller *dashboard.Controller
	filter     components.FilterInputModel
	selector   components.ChartSelectorModel
	chartView  components.ChartViewModel
	stats      components.StatsCardsModel
	help       help.Model
	spinner    spinner.Model
	keymap     KeyMap
	config     Config
	width      int
	height     int
	focus      focusArea
	applying   bool
	quitting   bool
	ready      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	ds := cfg.Source
	if ds == nil {
		ds = source.NewDataSource(source.Fixed{})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.StatusInfo

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	return Model{
		theme:     cfg.Theme,
		source:    ds,
		filter:    components.NewFilterInputModel(cfg.Theme),
		selector:  components.NewChartSelectorModel(cfg.Theme, cfg.Chart),
		chartView: components.NewChartViewModel(cfg.Theme),
		stats:     components.NewStatsCardsModel(cfg.Theme),
		help:      h,
		spinner:   sp,
		keymap:    DefaultKeyMap(),
		config:    cfg,
		width:     cfg.Width,
		height:    cfg.Height,
		focus:     focusFilter,
	}
}

// viewportWidth converts terminal columns into the pixel width charts are laid out for.
func viewportWidth(columns int) float64 {
	return float64(columns * components.CellWidth)
}

// Init starts the spinner and the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadRecords(m.source))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.controller != nil {
			m.controller.Resize(viewportWidth(msg.Width))
		}
		return m, nil

	case dataLoadedMsg:
		m.handleDataLoaded(msg)
		return m, nil

	case filterAppliedMsg:
		m.finishFilter(msg.threshold)
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleDataLoaded starts a new session over the loaded records, keeping the current
// chart selection and re-applying an active filter.
func (m *Model) handleDataLoaded(msg dataLoadedMsg) {
	kind, field := m.config.Chart, m.config.Field
	threshold, filtered := 0.0, false
	if m.controller != nil {
		kind, field = m.controller.Kind(), m.controller.Field()
		threshold, filtered = m.controller.Threshold()
	}

	m.controller = dashboard.New(msg.records,
		dashboard.WithChartKind(kind),
		dashboard.WithField(field),
		dashboard.WithViewportWidth(viewportWidth(m.width)),
		dashboard.WithFilterListener(logFilterEvent),
	)
	if filtered {
		_ = m.controller.ApplyFilter(threshold)
	}
	m.ready = true
}

func logFilterEvent(ev dashboard.FilterEvent) {
	common.LogInfo("Filtered sales data", common.Fields{
		"threshold": ev.Threshold,
		"count":     len(ev.Records),
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	if m.focus == focusFilter {
		return m.handleFilterKey(msg)
	}
	return m.handleChartKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Apply):
		return m.startFilter()
	case key.Matches(msg, m.keymap.Clear):
		m.clearFilter()
		return m, nil
	case key.Matches(msg, m.keymap.NextFocus, m.keymap.Blur):
		m.setFocus(focusChart)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m Model) handleChartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.NextFocus, m.keymap.FocusFilter):
		return m, m.setFocus(focusFilter)
	case key.Matches(msg, m.keymap.Apply):
		return m.startFilter()
	case key.Matches(msg, m.keymap.Clear):
		m.clearFilter()
	case key.Matches(msg, m.keymap.NextChart):
		m.selectChart(m.selector.Next())
	case key.Matches(msg, m.keymap.PrevChart):
		m.selectChart(m.selector.Prev())
	case key.Matches(msg, m.keymap.Bar):
		m.selectChart(model.ChartBar)
	case key.Matches(msg, m.keymap.Line):
		m.selectChart(model.ChartLine)
	case key.Matches(msg, m.keymap.Pie):
		m.selectChart(model.ChartPie)
	case key.Matches(msg, m.keymap.ToggleField):
		field := model.FieldRevenue
		if m.controller.Field() == model.FieldRevenue {
			field = model.FieldSales
		}
		_ = m.controller.SelectField(field)
	case key.Matches(msg, m.keymap.Refresh):
		if !m.applying {
			return m, loadRecords(m.source)
		}
	}
	return m, nil
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.selector.SetFocused(f == focusChart)
	if f == focusFilter {
		return m.filter.Focus()
	}
	m.filter.Blur()
	return nil
}

// startFilter validates the input and schedules the filter. A second apply while one
// is pending is ignored.
func (m Model) startFilter() (tea.Model, tea.Cmd) {
	if m.applying {
		return m, nil
	}

	threshold, err := m.filter.Threshold()
	if err != nil {
		m.rejectFilter(err)
		return m, nil
	}

	m.applying = true
	m.filter.SetApplying(true)
	m.selector.SetDisabled(true)
	return m, completeFilter(threshold, m.config.ApplyLatency)
}

func (m *Model) finishFilter(threshold float64) {
	m.applying = false
	m.filter.SetApplying(false)
	m.selector.SetDisabled(false)

	if err := m.controller.ApplyFilter(threshold); err != nil {
		m.rejectFilter(err)
	}
}

func (m *Model) rejectFilter(err error) {
	m.filter.SetError(common.UserMessage(err))
}

func (m *Model) clearFilter() {
	if m.applying {
		return
	}
	m.controller.ClearFilter()
	m.filter.Reset()
}

func (m *Model) selectChart(kind model.ChartKind) {
	if m.applying {
		return
	}
	if err := m.controller.SelectChart(kind); err == nil {
		m.selector.SetCurrent(kind)
	}
}
