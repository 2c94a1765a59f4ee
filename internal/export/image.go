package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WriteImage draws d as a PNG or SVG image of the given size.
func WriteImage(w io.Writer, f Format, d chart.Description, size ImageSize) error {
	var provider gochart.RendererProvider
	switch f {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q is not an image format", common.ErrUnsupportedFormat, f)
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultImageSize
	}
	if d.Empty {
		return fmt.Errorf("cannot draw chart: %w", common.ErrNoData)
	}

	var err error
	switch d.Kind {
	case model.ChartPie:
		err = drawPie(w, provider, d, size)
	case model.ChartLine:
		err = drawLine(w, provider, d, size)
	default:
		err = drawBar(w, provider, d, size)
	}
	if err != nil {
		return fmt.Errorf("failed to draw %s chart: %w", d.Kind, err)
	}
	return nil
}

func color(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func valueFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return chart.FormatValue(math.Round(f))
	}
	return ""
}

// yRange spans zero to a little above the largest value; go-chart rejects zero-height ranges.
func yRange(series []chart.Series) *gochart.ContinuousRange {
	top := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			top = math.Max(top, v)
		}
	}
	if top == 0 {
		top = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: top * 1.1}
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

// drawBar draws sales and revenue bars side by side for each category.
func drawBar(w io.Writer, provider gochart.RendererProvider, d chart.Description, size ImageSize) error {
	bars := make([]gochart.Value, 0, len(d.Categories)*len(d.Series))
	for i, category := range d.Categories {
		for j, s := range d.Series {
			label := ""
			if j == 0 {
				label = category
			}
			bars = append(bars, gochart.Value{
				Label: label,
				Value: s.Values[i],
				Style: gochart.Style{
					FillColor:   color(s.Color),
					StrokeColor: color(s.Color),
					StrokeWidth: 1,
				},
			})
		}
	}

	graph := gochart.BarChart{
		Title:      d.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: background(),
		BarSpacing: 8,
		YAxis: gochart.YAxis{
			Range:          yRange(d.Series),
			ValueFormatter: valueFormatter,
		},
		Bars: bars,
	}
	return graph.Render(provider, w)
}

func drawLine(w io.Writer, provider gochart.RendererProvider, d chart.Description, size ImageSize) error {
	xs := make([]float64, len(d.Categories))
	ticks := make([]gochart.Tick, len(d.Categories))
	for i, category := range d.Categories {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: category}
	}

	series := make([]gochart.Series, 0, len(d.Series))
	for _, s := range d.Series {
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
			Style: gochart.Style{
				StrokeColor: color(s.Color),
				StrokeWidth: 2,
				DotColor:    color(s.Color),
				DotWidth:    4,
			},
		})
	}

	graph := gochart.Chart{
		Title:      d.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: background(),
		XAxis: gochart.XAxis{
			// Half a step of margin keeps single-record charts drawable.
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(xs)) - 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Range:          yRange(d.Series),
			ValueFormatter: valueFormatter,
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	return graph.Render(provider, w)
}

func drawPie(w io.Writer, provider gochart.RendererProvider, d chart.Description, size ImageSize) error {
	if d.Pie == nil || d.Total() <= 0 {
		return common.ErrNoData
	}

	values := make([]gochart.Value, len(d.Pie.Slices))
	for i, s := range d.Pie.Slices {
		label := s.Text
		if label == "" {
			label = s.Label
		}
		values[i] = gochart.Value{
			Label: label,
			Value: s.Value,
			Style: gochart.Style{
				FillColor:   color(s.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		}
	}

	graph := gochart.PieChart{
		Title:      d.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: background(),
		Values:     values,
	}
	return graph.Render(provider, w)
}
