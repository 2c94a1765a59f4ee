package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/model"
)

type document struct {
	Summary   string               `json:"summary"`
	Records   []model.SalesRecord  `json:"records"`
	Chart     chart.Description    `json:"chart"`
	Stats     model.AggregateStats `json:"stats"`
	Threshold float64              `json:"threshold"`
	Filtered  bool                 `json:"filtered"`
}

// WriteJSON writes the report as an indented JSON document.
func WriteJSON(w io.Writer, report Report) error {
	records := report.Records
	if records == nil {
		records = []model.SalesRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{
		Summary:   report.Summary,
		Records:   records,
		Chart:     report.Chart,
		Stats:     report.Stats,
		Threshold: report.Threshold,
		Filtered:  report.Filtered,
	}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
