// Package dashboard ties the record set, filter, statistics and chart together for one session.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/aggregate"
	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/filter"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
)

// DefaultViewportWidth is used until the first resize notification arrives.
const DefaultViewportWidth = 1024

// FilterEvent is emitted after every successful filter or clear action.
type FilterEvent struct {
	Records   []model.SalesRecord
	Threshold float64
}

// Controller owns the state of one dashboard session. It is driven from a single
// event loop and is not safe for concurrent use.
type Controller struct {
	listener   func(FilterEvent)
	renderer   *chart.Renderer
	selector   *chart.Selector
	chart      *chart.Description
	validation string
	field      model.Field
	full       []model.SalesRecord
	active     []model.SalesRecord
	filter     filter.State
	stats      model.AggregateStats
}

type settings struct {
	listener func(FilterEvent)
	field    model.Field
	width    float64
	kind     model.ChartKind
}

// Option configures a Controller.
type Option func(*settings)

// WithFilterListener registers fn to be called after each filter or clear action.
func WithFilterListener(fn func(FilterEvent)) Option {
	return func(s *settings) {
		s.listener = fn
	}
}

// WithChartKind sets the initially selected chart kind.
func WithChartKind(kind model.ChartKind) Option {
	return func(s *settings) {
		s.kind = kind
	}
}

// WithField sets the value pie charts are drawn from.
func WithField(field model.Field) Option {
	return func(s *settings) {
		s.field = field
	}
}

// WithViewportWidth sets the initial viewport width.
func WithViewportWidth(width float64) Option {
	return func(s *settings) {
		s.width = width
	}
}

// New starts a session over full. The active set starts as the full set.
func New(full []model.SalesRecord, opts ...Option) *Controller {
	s := settings{
		kind:  model.ChartBar,
		field: model.FieldSales,
		width: DefaultViewportWidth,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if full == nil {
		full = []model.SalesRecord{}
	}

	c := &Controller{
		full:     full,
		active:   full,
		listener: s.listener,
		field:    s.field,
		renderer: chart.NewRenderer(s.width),
		selector: chart.NewSelector(s.kind),
	}
	c.stats = aggregate.Compute(c.active)
	return c
}

// Load fetches the full set once from ds and starts a session over it.
func Load(ctx context.Context, ds *source.DataSource, opts ...Option) *Controller {
	records := ds.Fetch(ctx)
	slog.Info("Loaded sales records", "count", len(records), "source", ds.String())
	return New(records, opts...)
}

// ApplyFilter keeps only records whose sales meet threshold. A rejected threshold
// leaves the session untouched and is reported by ValidationMessage.
func (c *Controller) ApplyFilter(threshold float64) error {
	active, err := filter.Apply(c.full, threshold)
	if err != nil {
		c.validation = common.UserMessage(err)
		return err
	}
	if err := c.filter.Apply(threshold); err != nil {
		c.validation = common.UserMessage(err)
		return err
	}

	c.validation = ""
	c.setActive(active)
	common.LogDebug("Applied sales filter", common.Fields{
		"threshold": threshold,
		"matched":   len(active),
		"total":     len(c.full),
	})
	c.emit(FilterEvent{Threshold: threshold, Records: active})
	return nil
}

// ClearFilter restores the full set and resets the threshold to zero.
func (c *Controller) ClearFilter() {
	c.filter.Clear()
	c.validation = ""
	c.setActive(filter.Clear(c.full))
	c.emit(FilterEvent{Threshold: 0, Records: c.active})
}

// SelectChart switches the chart kind. The active set and statistics are not recomputed.
func (c *Controller) SelectChart(kind model.ChartKind) error {
	changed, err := c.selector.Set(kind)
	if err != nil {
		return err
	}
	if changed {
		c.chart = nil
	}
	return nil
}

// SelectField switches the value pie charts are drawn from.
func (c *Controller) SelectField(field model.Field) error {
	if field != model.FieldSales && field != model.FieldRevenue {
		return fmt.Errorf("%w: unknown field %q", common.ErrInvalidConfig, field)
	}
	if field != c.field {
		c.field = field
		c.chart = nil
	}
	return nil
}

// Resize records a new viewport width and reports whether the chart layout changed.
func (c *Controller) Resize(width float64) bool {
	if !c.renderer.Resize(width) {
		return false
	}
	c.chart = nil
	return true
}

// Chart returns the description of the active set for the current kind and viewport.
func (c *Controller) Chart() chart.Description {
	if c.chart == nil {
		d := c.renderer.Render(c.active, c.selector.Current(), chart.WithField(c.field))
		c.chart = &d
	}
	return *c.chart
}

// ValidationMessage returns the message of the last rejected action, if any.
func (c *Controller) ValidationMessage() string {
	return c.validation
}

// Summary returns the "{n} of {m} records displayed" caption.
func (c *Controller) Summary() string {
	return fmt.Sprintf("%d of %d records displayed", len(c.active), len(c.full))
}

func (c *Controller) setActive(records []model.SalesRecord) {
	c.active = records
	c.stats = aggregate.Compute(records)
	c.chart = nil
}

// emit hands the listener its own copy of the records.
func (c *Controller) emit(ev FilterEvent) {
	if c.listener == nil {
		return
	}
	records := make([]model.SalesRecord, len(ev.Records))
	copy(records, ev.Records)
	ev.Records = records
	c.listener(ev)
}
