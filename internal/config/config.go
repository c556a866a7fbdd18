// Package config loads linkrank runtime settings from viper: built-in
// defaults, then .linkrank.toml, then LINKRANK_* environment variables, then
// command-line flags bound by the commands.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all runtime configuration of a linkrank invocation.
type Config struct {
	Capacity      int           `mapstructure:"capacity"`
	Damping       float64       `mapstructure:"damping"`
	Tolerance     float64       `mapstructure:"tolerance"`
	Workers       int           `mapstructure:"workers"`
	MaxIterations int           `mapstructure:"max_iterations"`
	Format        string        `mapstructure:"format"`
	Sort          string        `mapstructure:"sort"`
	Top           int           `mapstructure:"top"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFormat     string        `mapstructure:"log_format"`
	MetricsAddr   string        `mapstructure:"metrics_addr"`
	Watch         bool          `mapstructure:"watch"`
	Debounce      time.Duration `mapstructure:"debounce"`
}

// Sort orders accepted by the sort key.
const (
	SortIndex = "index"
	SortValue = "value"
)

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("capacity", 0) // 0: size the engine from the input
	viper.SetDefault("damping", 0.85)
	viper.SetDefault("tolerance", 0.0001)
	viper.SetDefault("workers", 0) // 0: GOMAXPROCS
	viper.SetDefault("max_iterations", 0)
	viper.SetDefault("format", "text")
	viper.SetDefault("sort", SortValue)
	viper.SetDefault("top", 0)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("watch", false)
	viper.SetDefault("debounce", 200*time.Millisecond)
}

// Load applies defaults, decodes the merged viper state and validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Sort = strings.ToLower(cfg.Sort)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations. Output formats are checked by the
// report package at write time.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 0:
		return fmt.Errorf("capacity=%d < 0: %w", c.Capacity, ErrInvalidConfig)
	case math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("damping=%g not in [0,1]: %w", c.Damping, ErrInvalidConfig)
	case math.IsNaN(c.Tolerance) || c.Tolerance < 0:
		return fmt.Errorf("tolerance=%g < 0: %w", c.Tolerance, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers=%d < 0: %w", c.Workers, ErrInvalidConfig)
	case c.MaxIterations < 0:
		return fmt.Errorf("max_iterations=%d < 0: %w", c.MaxIterations, ErrInvalidConfig)
	case c.Top < 0:
		return fmt.Errorf("top=%d < 0: %w", c.Top, ErrInvalidConfig)
	case c.Sort != SortIndex && c.Sort != SortValue:
		return fmt.Errorf("sort=%q, want %q or %q: %w", c.Sort, SortIndex, SortValue, ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("log_format=%q, want text or json: %w", c.LogFormat, ErrInvalidConfig)
	case c.Debounce < 0:
		return fmt.Errorf("debounce=%s < 0: %w", c.Debounce, ErrInvalidConfig)
	}

	return nil
}
