package chart

import "github.com/Veraticus/salesdash/internal/model"

type options struct {
	title string
	field model.Field
}

// Option customizes a rendered description.
type Option func(*options)

// WithTitle overrides the kind's default title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithField selects the value a pie chart is drawn from. Bar and line charts ignore it.
func WithField(field model.Field) Option {
	return func(o *options) {
		if field == model.FieldSales || field == model.FieldRevenue {
			o.field = field
		}
	}
}

// Render describes records as a chart of the given kind at the given viewport width.
func Render(records []model.SalesRecord, kind model.ChartKind, viewportWidth float64, opts ...Option) Description {
	return renderClass(records, kind, Classify(viewportWidth), opts...)
}

func renderClass(records []model.SalesRecord, kind model.ChartKind, class ViewportClass, opts ...Option) Description {
	if len(records) == 0 {
		return Empty()
	}

	o := options{field: model.FieldSales}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case model.ChartLine:
		return cartesian(records, model.ChartLine, titleOr(o.title, LineTitle))
	case model.ChartPie:
		return pie(records, o, class)
	default:
		return cartesian(records, model.ChartBar, titleOr(o.title, BarTitle))
	}
}

// Empty returns the "no data available" sentinel.
func Empty() Description {
	return Description{Empty: true, Message: NoDataMessage}
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}

func cartesian(records []model.SalesRecord, kind model.ChartKind, title string) Description {
	categories := make([]string, len(records))
	sales := make([]float64, len(records))
	revenue := make([]float64, len(records))
	for i, r := range records {
		categories[i] = r.Month
		sales[i] = r.Sales
		revenue[i] = r.Revenue
	}

	return Description{
		Kind:       kind,
		Title:      title,
		Height:     DefaultHeight,
		Categories: categories,
		Series: []Series{
			{Key: model.FieldSales, Name: string(model.FieldSales), Color: SalesColor, Values: sales},
			{Key: model.FieldRevenue, Name: string(model.FieldRevenue), Color: RevenueColor, Values: revenue},
		},
	}
}

func pie(records []model.SalesRecord, o options, class ViewportClass) Description {
	layout := LayoutFor(class)

	slices := make([]Slice, len(records))
	for i, r := range records {
		v := r.Value(o.field)
		slices[i] = Slice{Label: r.Month, Value: v, Color: ColorAt(i)}
		if layout.ShowLabels {
			slices[i].Text = SliceLabel(r.Month, v)
		}
	}

	var grid []LegendEntry
	if layout.LegendGrid {
		grid = make([]LegendEntry, len(slices))
		for i, s := range slices {
			grid[i] = LegendEntry{Label: s.Label, Value: s.Value, Color: s.Color}
		}
	}

	return Description{
		Kind:   model.ChartPie,
		Title:  titleOr(o.title, PieTitle),
		Height: layout.Height,
		Pie: &Pie{
			Field:      o.field,
			Slices:     slices,
			LegendGrid: grid,
			Layout:     layout,
			Viewport:   class,
		},
	}
}

// Renderer renders charts for the most recent viewport width it was told about.
type Renderer struct {
	width float64
	class ViewportClass
}

// NewRenderer returns a renderer for the given initial viewport width.
func NewRenderer(width float64) *Renderer {
	return &Renderer{width: width, class: Classify(width)}
}

// Resize records a new viewport width and reports whether the viewport class changed.
// Repeated notifications with widths in the same class are no-ops.
func (r *Renderer) Resize(width float64) bool {
	r.width = width
	class := Classify(width)
	if class == r.class {
		return false
	}
	r.class = class
	return true
}

// Width returns the last viewport width.
func (r *Renderer) Width() float64 {
	return r.width
}

// Class returns the current viewport class.
func (r *Renderer) Class() ViewportClass {
	return r.class
}

// Render describes records for the renderer's current viewport class.
func (r *Renderer) Render(records []model.SalesRecord, kind model.ChartKind, opts ...Option) Description {
	return renderClass(records, kind, r.class, opts...)
}
