package chart

// ViewportClass is a coarse classification of the display width.
type ViewportClass int

// Viewport classes.
const (
	ViewportNormal ViewportClass = iota
	ViewportSmall
)

// Breakpoint is the width below which a viewport is Small.
const Breakpoint = 640

func (c ViewportClass) String() string {
	if c == ViewportSmall {
		return "small"
	}
	return "normal"
}

// MarshalText encodes c by name.
func (c ViewportClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify maps a viewport width to its class.
func Classify(width float64) ViewportClass {
	if width < Breakpoint {
		return ViewportSmall
	}
	return ViewportNormal
}

// LegendLayout is the direction legend entries flow in.
type LegendLayout string

// Legend layouts.
const (
	LegendVertical   LegendLayout = "vertical"
	LegendHorizontal LegendLayout = "horizontal"
)

// Align is a horizontal alignment.
type Align string

// Horizontal alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VerticalAlign is a vertical alignment.
type VerticalAlign string

// Vertical alignments.
const (
	VerticalTop    VerticalAlign = "top"
	VerticalMiddle VerticalAlign = "middle"
	VerticalBottom VerticalAlign = "bottom"
)

// Legend describes where the legend sits and how entries flow.
type Legend struct {
	Layout        LegendLayout  `json:"layout"`
	Align         Align         `json:"align"`
	VerticalAlign VerticalAlign `json:"vertical_align"`
	Wrap          bool          `json:"wrap"`
}

// PieLayout holds every layout parameter that depends on the viewport class.
type PieLayout struct {
	Legend      Legend `json:"legend"`
	OuterRadius int    `json:"outer_radius"`
	Height      int    `json:"height"`
	ShowLabels  bool   `json:"show_labels"`
	LegendGrid  bool   `json:"legend_grid"`
}

var pieLayouts = [...]PieLayout{
	ViewportNormal: {
		OuterRadius: 120,
		Height:      400,
		Legend: Legend{
			Layout:        LegendVertical,
			Align:         AlignRight,
			VerticalAlign: VerticalMiddle,
		},
		ShowLabels: true,
	},
	ViewportSmall: {
		OuterRadius: 80,
		Height:      300,
		Legend: Legend{
			Layout:        LegendHorizontal,
			Align:         AlignCenter,
			VerticalAlign: VerticalBottom,
			Wrap:          true,
		},
		LegendGrid: true,
	},
}

// LayoutFor returns the pie layout parameters for class c.
func LayoutFor(c ViewportClass) PieLayout {
	if c != ViewportSmall {
		c = ViewportNormal
	}
	return pieLayouts[c]
}
