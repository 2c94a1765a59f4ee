package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
)

// sessionOptions describe the dashboard state a one-shot command reproduces.
type sessionOptions struct {
	Chart     string
	Field     string
	Threshold float64
	Width     float64
}

// openSource opens the configured source. The closer is never nil.
func openSource(ctx context.Context, cfg *config.Config) (*source.DataSource, io.Closer, error) {
	ds, closer, err := source.Open(ctx, cfg.Source)
	if err != nil {
		return nil, closer, fmt.Errorf("failed to open %s source: %w", cfg.Source.Kind, err)
	}
	slog.Debug("Opened sales source", "kind", cfg.Source.Kind, "fetcher", ds.String())
	return ds, closer, nil
}

// newSession loads records and puts a dashboard session into the state described by opts.
// Empty chart and field options fall back to the configured defaults.
func newSession(ctx context.Context, ds *source.DataSource, cfg *config.Config, opts sessionOptions) (*dashboard.Controller, error) {
	kind := cfg.Dashboard.Chart
	if opts.Chart != "" {
		k, err := model.ParseChartKind(opts.Chart)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	field := cfg.Dashboard.Field
	if opts.Field != "" {
		f, err := model.ParseField(opts.Field)
		if err != nil {
			return nil, err
		}
		field = f
	}

	width := opts.Width
	if width <= 0 {
		width = dashboard.DefaultViewportWidth
	}

	ctrl := dashboard.Load(ctx, ds,
		dashboard.WithChartKind(kind),
		dashboard.WithField(field),
		dashboard.WithViewportWidth(width),
	)
	if opts.Threshold != 0 {
		if err := ctrl.ApplyFilter(opts.Threshold); err != nil {
			return nil, err
		}
	}
	return ctrl, nil
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("Failed to close sales source", "error", err)
	}
}
