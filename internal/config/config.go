// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SALESDASH_SOURCE_URL.
const EnvPrefix = "SALESDASH"

// Config is the validated application configuration.
type Config struct {
	Dashboard Dashboard
	Source    source.Config
	Export    Export
}

// Dashboard configures the interactive dashboard.
type Dashboard struct {
	Field        model.Field
	Theme        string
	LogFile      string
	ApplyLatency time.Duration
	Chart        model.ChartKind
}

// Export configures image exports.
type Export struct {
	Width  int
	Height int
}

// SetDefaults registers default values for every key on v.
func SetDefaults(v *viper.Viper) {
	def := source.DefaultConfig()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("source.kind", string(def.Kind))
	v.SetDefault("source.url", def.URL)
	v.SetDefault("source.path", "~/.local/share/salesdash/sales.db")
	v.SetDefault("source.timeout", def.Timeout)
	v.SetDefault("dashboard.chart", model.ChartBar.String())
	v.SetDefault("dashboard.field", string(model.FieldSales))
	v.SetDefault("dashboard.theme", "default")
	v.SetDefault("dashboard.apply_latency", 300*time.Millisecond)
	v.SetDefault("dashboard.log_file", "")
	v.SetDefault("export.width", 1024)
	v.SetDefault("export.height", 512)
}

// BindEnv makes v read SALESDASH_-prefixed environment variables, with dots in
// key names replaced by underscores.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	kind, err := model.ParseChartKind(v.GetString("dashboard.chart"))
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard.chart: %w", common.ErrInvalidConfig, err)
	}
	field, err := model.ParseField(v.GetString("dashboard.field"))
	if err != nil {
		return nil, fmt.Errorf("dashboard.field: %w", err)
	}

	cfg := &Config{
		Source: source.Config{
			Kind:    source.Kind(strings.ToLower(v.GetString("source.kind"))),
			URL:     v.GetString("source.url"),
			Path:    ExpandPath(v.GetString("source.path")),
			Timeout: v.GetDuration("source.timeout"),
		},
		Dashboard: Dashboard{
			Chart:        kind,
			Field:        field,
			Theme:        v.GetString("dashboard.theme"),
			ApplyLatency: v.GetDuration("dashboard.apply_latency"),
			LogFile:      ExpandPath(v.GetString("dashboard.log_file")),
		},
		Export: Export{
			Width:  v.GetInt("export.width"),
			Height: v.GetInt("export.height"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no component can work with.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if c.Dashboard.ApplyLatency < 0 {
		return fmt.Errorf("%w: dashboard.apply_latency cannot be negative", common.ErrInvalidConfig)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("%w: export size must be positive, got %dx%d",
			common.ErrInvalidConfig, c.Export.Width, c.Export.Height)
	}
	return nil
}
