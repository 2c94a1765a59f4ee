package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/export"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the displayed records or chart to a file",
		Long: `Export what the dashboard displays for a threshold.

Tabular formats (csv, json, xlsx) contain the records and their statistics.
Image formats (png, svg) draw the selected chart; with --all-charts one image
is written per chart kind.`,
		RunE: runExport,
	}

	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}

	cmd.Flags().StringP("format", "f", "csv", "export format ("+strings.Join(formats, ", ")+")")
	cmd.Flags().StringP("output", "o", "", "output file, - for stdout (default: sales.<format>)")
	cmd.Flags().Float64P("threshold", "t", 0, "minimum sales a record needs to be exported")
	cmd.Flags().String("chart", "", "chart kind to draw (bar, line, pie)")
	cmd.Flags().String("field", "", "value pie charts are drawn from (sales, revenue)")
	cmd.Flags().Bool("all-charts", false, "write one image per chart kind")

	return cmd
}

type exportOptions struct {
	Output    string
	Format    export.Format
	Session   sessionOptions
	AllCharts bool
}

func runExport(cmd *cobra.Command, _ []string) error {
	opts, err := exportOptionsFrom(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	size := export.ImageSize{Width: cfg.Export.Width, Height: cfg.Export.Height}
	opts.Session.Width = float64(size.Width)

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Export")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	ds, closer, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	ctrl, err := newSession(ctx, ds, cfg, opts.Session)
	if err != nil {
		return err
	}

	if opts.AllCharts && opts.Format.IsImage() {
		return exportAllCharts(ctx, cmd.ErrOrStderr(), ctrl, opts, size)
	}

	if err := writeExport(opts.Output, opts.Format, export.FromSnapshot(ctrl.Snapshot()), size, cmd.OutOrStdout()); err != nil {
		return err
	}
	if opts.Output != "-" {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Exported "+ctrl.Summary()+" to "+opts.Output))
	}
	return nil
}

func exportOptionsFrom(cmd *cobra.Command) (exportOptions, error) {
	rawFormat, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return exportOptions{}, err
	}

	opts := exportOptions{Format: format}
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.AllCharts, _ = cmd.Flags().GetBool("all-charts")
	opts.Session.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	opts.Session.Chart, _ = cmd.Flags().GetString("chart")
	opts.Session.Field, _ = cmd.Flags().GetString("field")

	if opts.Output == "" {
		opts.Output = "sales" + format.Extension()
	}
	if opts.AllCharts && opts.Output == "-" {
		return exportOptions{}, fmt.Errorf("--all-charts writes several files and cannot write to stdout")
	}
	return opts, nil
}

// exportAllCharts writes one image per chart kind, next to opts.Output.
func exportAllCharts(ctx context.Context, progressOut io.Writer, ctrl *dashboard.Controller, opts exportOptions, size export.ImageSize) error {
	kinds := chart.Kinds()
	bar := progressbar.NewOptions(len(kinds),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Drawing charts...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(progressOut)
		}),
	)

	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ctrl.SelectChart(kind); err != nil {
			return err
		}

		path := chartPath(opts.Output, kind)
		if err := writeExport(path, opts.Format, export.FromSnapshot(ctrl.Snapshot()), size, nil); err != nil {
			return err
		}
		slog.Debug("Wrote chart image", "kind", kind, "path", path)

		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
	return nil
}

// chartPath inserts the chart kind before the extension: sales.png becomes sales-pie.png.
func chartPath(output string, kind model.ChartKind) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "-" + kind.String() + ext
}

// writeExport writes report to path, or to stdout when path is "-".
func writeExport(path string, format export.Format, report export.Report, size export.ImageSize, stdout io.Writer) error {
	if path == "-" {
		return export.Write(stdout, format, report, size)
	}

	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.Write(f, format, report, size); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
