package tui

import (
	"time"

	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/Veraticus/salesdash/internal/tui/themes"
)

// DefaultApplyLatency is how long an applied filter stays pending before it takes effect.
const DefaultApplyLatency = 300 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Source       *source.DataSource
	Field        model.Field
	ApplyLatency time.Duration
	Width        int
	Height       int
	Chart        model.ChartKind
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Field:        model.FieldSales,
		ApplyLatency: DefaultApplyLatency,
		Width:        80,
		Height:       24,
		Chart:        model.ChartBar,
	}
}

// WithSource sets where records are loaded from. Without one the built-in records are shown.
func WithSource(ds *source.DataSource) Option {
	return func(c *Config) {
		c.Source = ds
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithChartKind sets the initially selected chart.
func WithChartKind(kind model.ChartKind) Option {
	return func(c *Config) {
		c.Chart = kind
	}
}

// WithField sets the value pie charts are drawn from.
func WithField(field model.Field) Option {
	return func(c *Config) {
		c.Field = field
	}
}

// WithApplyLatency sets how long a filter stays pending. Zero applies immediately.
func WithApplyLatency(d time.Duration) Option {
	return func(c *Config) {
		c.ApplyLatency = max(d, 0)
	}
}

// WithHelp shows the full key help on start.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
