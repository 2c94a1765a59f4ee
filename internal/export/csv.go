package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"id", "month", "date", "sales", "revenue"}

// WriteCSV writes one row per record in display order, followed by a totals row.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range report.Records {
		row := []string{r.ID, r.Month, r.Date, formatFloat(r.Sales), formatFloat(r.Revenue)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", r.ID, err)
		}
	}
	total := []string{"", "Total", "", formatFloat(report.Stats.TotalSales), formatFloat(report.Stats.TotalRevenue)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("failed to write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
