package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/tui"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive sales dashboard.

Type a minimum sales value and press Enter to filter, Ctrl+X to clear it.
Tab moves to the chart, where b, l and p switch between bar, line and pie charts.`,
		RunE: runDashboard,
	}
	dashboardFlags(cmd)
	return cmd
}

func dashboardFlags(cmd *cobra.Command) {
	cmd.Flags().String("chart", "bar", "initial chart (bar, line, pie)")
	cmd.Flags().String("field", "sales", "value pie charts are drawn from (sales, revenue)")
	cmd.Flags().String("theme", "default", fmt.Sprintf("color theme (%v)", themes.Names()))
	cmd.Flags().Bool("help-keys", false, "show all key bindings on start")

	_ = viper.BindPFlag("dashboard.chart", cmd.Flags().Lookup("chart"))
	_ = viper.BindPFlag("dashboard.field", cmd.Flags().Lookup("field"))
	_ = viper.BindPFlag("dashboard.theme", cmd.Flags().Lookup("theme"))
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so logs go to a file or nowhere.
	logOut, closeLog, err := dashboardLogWriter(cfg.Dashboard.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := common.SetupLogger(logOut, viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	ctx := cmd.Context()
	ds, closer, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	// Running the root command directly has no dashboard flags.
	showKeys := false
	if f := cmd.Flags().Lookup("help-keys"); f != nil {
		showKeys = f.Value.String() == "true"
	}

	slog.Info("Starting dashboard", "source", cfg.Source.Kind, "chart", cfg.Dashboard.Chart)
	return tui.Run(ctx,
		tui.WithSource(ds),
		tui.WithTheme(themes.GetTheme(cfg.Dashboard.Theme)),
		tui.WithChartKind(cfg.Dashboard.Chart),
		tui.WithField(cfg.Dashboard.Field),
		tui.WithApplyLatency(cfg.Dashboard.ApplyLatency),
		tui.WithHelp(showKeys),
	)
}

func dashboardLogWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // path comes from the user's config
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
