// Package chart turns sales records into renderable chart descriptions and picks
// layout parameters for the current viewport.
package chart

import (
	"strconv"

	"github.com/Veraticus/salesdash/internal/model"
)

// NoDataMessage is the text of the empty-chart sentinel.
const NoDataMessage = "No data available"

// Default titles per chart kind.
const (
	BarTitle  = "Sales Data - Bar Chart"
	LineTitle = "Sales Data - Line Chart"
	PieTitle  = "Sales Distribution - Pie Chart"
)

// DefaultHeight is the container height of bar and line charts.
const DefaultHeight = 400

// Series is one named sequence of values aligned with Description.Categories.
type Series struct {
	Key    model.Field `json:"key"`
	Name   string      `json:"name"`
	Color  string      `json:"color"`
	Values []float64   `json:"values"`
}

// Slice is one pie slice.
type Slice struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	Text  string  `json:"text,omitempty"` // In-slice label, empty when labels are suppressed
	Value float64 `json:"value"`
}

// LegendEntry is one row of the supplementary legend grid.
type LegendEntry struct {
	Label string  `json:"label"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

// Pie holds the pie-specific part of a description.
type Pie struct {
	Field      model.Field   `json:"field"`
	Slices     []Slice       `json:"slices"`
	LegendGrid []LegendEntry `json:"legend_grid,omitempty"`
	Layout     PieLayout     `json:"layout"`
	Viewport   ViewportClass `json:"viewport"`
}

// Description is a renderer-independent description of a chart.
// An Empty description carries only Message and is the same for every kind.
type Description struct {
	Pie        *Pie            `json:"pie,omitempty"`
	Title      string          `json:"title,omitempty"`
	Message    string          `json:"message,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	Series     []Series        `json:"series,omitempty"`
	Kind       model.ChartKind `json:"kind"`
	Height     int             `json:"height,omitempty"`
	Empty      bool            `json:"empty"`
}

// Total returns the sum of all slice values of a pie description.
func (d Description) Total() float64 {
	if d.Pie == nil {
		return 0
	}
	var total float64
	for _, s := range d.Pie.Slices {
		total += s.Value
	}
	return total
}

// FormatValue renders a chart value the way slice labels show it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SliceLabel renders an in-slice label.
func SliceLabel(label string, value float64) string {
	return label + ": " + FormatValue(value)
}
