package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/export"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the displayed records and their totals",
		Long: `Print the records a dashboard would display for a threshold, followed by
total sales, total revenue and average sales.`,
		RunE: runStats,
	}

	cmd.Flags().Float64P("threshold", "t", 0, "minimum sales a record needs to be shown")
	cmd.Flags().String("chart", "", "chart kind to describe (bar, line, pie)")
	cmd.Flags().String("field", "", "value pie charts are drawn from (sales, revenue)")
	cmd.Flags().Float64("width", 0, "viewport width in pixels the chart is laid out for")
	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	var opts sessionOptions
	opts.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	opts.Chart, _ = cmd.Flags().GetString("chart")
	opts.Field, _ = cmd.Flags().GetString("field")
	opts.Width, _ = cmd.Flags().GetFloat64("width")
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ds, closer, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	ctrl, err := newSession(ctx, ds, cfg, opts)
	if err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	slog.Debug("Computed statistics", "records", len(snap.Active), "threshold", opts.Threshold)

	if format == "json" {
		return export.Write(cmd.OutOrStdout(), export.FormatJSON, export.FromSnapshot(snap), export.DefaultImageSize)
	}
	return writeStatsTable(cmd.OutOrStdout(), snap)
}

// writeStatsTable prints the active records and a totals box.
func writeStatsTable(w io.Writer, snap dashboard.Snapshot) error {
	rows := make([][]string, 0, len(snap.Active))
	for _, r := range snap.Active {
		rows = append(rows, []string{
			r.Month,
			cli.FormatCount(r.Sales),
			cli.FormatCurrency(r.Revenue),
		})
	}

	var body string
	if len(rows) == 0 {
		body = cli.FormatWarning("No records meet the threshold")
	} else {
		body = cli.RenderTable([]string{"Month", "Sales", "Revenue"}, rows)
	}

	totals := fmt.Sprintf("Total Sales:    %s\nTotal Revenue:  %s\nAverage Sales:  %s",
		cli.FormatCount(snap.Stats.TotalSales),
		cli.FormatCurrency(snap.Stats.TotalRevenue),
		cli.FormatAverage(snap.Stats.AverageSales),
	)

	chartLine := cli.FormatInfo(fmt.Sprintf("Chart: %s (%s viewport)", chartTitle(snap), snap.Viewport))

	_, err := fmt.Fprintf(w, "%s\n\n%s\n%s\n%s\n", cli.FormatTitle(snap.Summary), body, cli.RenderBox("Statistics", totals), chartLine)
	return err
}

func chartTitle(snap dashboard.Snapshot) string {
	if snap.Chart.Empty {
		return snap.Chart.Message
	}
	return snap.Chart.Title
}
