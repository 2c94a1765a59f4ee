package dashboard

import (
	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/model"
)

// Snapshot is a point-in-time view of a session. Active is a copy.
type Snapshot struct {
	Chart      chart.Description
	Validation string
	Summary    string
	Field      model.Field
	Active     []model.SalesRecord
	Stats      model.AggregateStats
	Threshold  float64
	FullCount  int
	Width      float64
	Kind       model.ChartKind
	Viewport   chart.ViewportClass
	Filtered   bool
}

// Snapshot captures the current session state.
func (c *Controller) Snapshot() Snapshot {
	active := make([]model.SalesRecord, len(c.active))
	copy(active, c.active)

	return Snapshot{
		Threshold:  c.filter.Threshold,
		Filtered:   c.filter.Active,
		Active:     active,
		FullCount:  len(c.full),
		Stats:      c.stats,
		Kind:       c.selector.Current(),
		Field:      c.field,
		Width:      c.renderer.Width(),
		Viewport:   c.renderer.Class(),
		Chart:      c.Chart(),
		Validation: c.validation,
		Summary:    c.Summary(),
	}
}

// Records returns a copy of the full set.
func (c *Controller) Records() []model.SalesRecord {
	out := make([]model.SalesRecord, len(c.full))
	copy(out, c.full)
	return out
}

// Stats returns the statistics of the active set.
func (c *Controller) Stats() model.AggregateStats {
	return c.stats
}

// Kind returns the selected chart kind.
func (c *Controller) Kind() model.ChartKind {
	return c.selector.Current()
}

// Field returns the value pie charts are drawn from.
func (c *Controller) Field() model.Field {
	return c.field
}

// Threshold returns the current threshold and whether a filter is applied.
func (c *Controller) Threshold() (float64, bool) {
	return c.filter.Threshold, c.filter.Active
}
