// Package export writes the displayed records, their statistics and the chart to files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/model"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXLSX, FormatPNG, FormatSVG}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, s)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// IsImage reports whether f draws the chart rather than tabulating the records.
func (f Format) IsImage() bool {
	return f == FormatPNG || f == FormatSVG
}

// Report is everything an export can contain.
type Report struct {
	Chart     chart.Description
	Summary   string
	Records   []model.SalesRecord
	Stats     model.AggregateStats
	Threshold float64
	Filtered  bool
}

// FromSnapshot builds a report of what a dashboard session currently displays.
func FromSnapshot(snap dashboard.Snapshot) Report {
	return Report{
		Chart:     snap.Chart,
		Summary:   snap.Summary,
		Records:   snap.Active,
		Stats:     snap.Stats,
		Threshold: snap.Threshold,
		Filtered:  snap.Filtered,
	}
}

// ImageSize is the pixel size of exported chart images.
type ImageSize struct {
	Width  int
	Height int
}

// DefaultImageSize is used when no size is configured.
var DefaultImageSize = ImageSize{Width: 1024, Height: 512}

// Write encodes report to w in format f. Image formats draw report.Chart at size.
func Write(w io.Writer, f Format, report Report, size ImageSize) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	case FormatPNG, FormatSVG:
		return WriteImage(w, f, report.Chart, size)
	default:
		return fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, f)
	}
}
