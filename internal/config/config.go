// Package config loads gridroute settings from defaults, an optional TOML
// file and the environment, in that order of increasing precedence.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/gridio"
)

// Environment variable names.
const (
	EnvMaxWeight    = "GRIDROUTE_MAX_WEIGHT"
	EnvLegacyBounds = "GRIDROUTE_LEGACY_BOUNDS"
	EnvLogLevel     = "GRIDROUTE_LOG_LEVEL"
	EnvMaxCells     = "GRIDROUTE_MAX_CELLS"
)

// DefaultEnvFile is loaded when present and no explicit env file is given.
const DefaultEnvFile = ".env"

// ErrInvalidConfig indicates an unreadable or inconsistent configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one gridroute invocation.
type Config struct {
	MaxWeight    int    `toml:"max_weight"`    // largest accepted cell weight
	LegacyBounds bool   `toml:"legacy_bounds"` // reproduce the historical coordinate check
	LogLevel     string `toml:"log_level"`     // debug, info, warn or error
	MaxCells     int    `toml:"max_cells"`     // cap on lines*columns
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxWeight: gridgraph.DefaultMaxWeight,
		LogLevel:  "info",
		MaxCells:  gridio.DefaultMaxCells,
	}
}

// Load builds a Config from defaults, then path (TOML, skipped when empty),
// then the environment. envFiles are loaded into the environment first with
// godotenv; when none are given, DefaultEnvFile is loaded if it exists.
// Variables already set in the process environment win over env files.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, undecoded)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: env file: %w", ErrInvalidConfig, err)
	}

	return nil
}

// applyEnv overrides fields whose variables are set.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvMaxWeight); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidConfig, EnvMaxWeight, v)
		}
		c.MaxWeight = n
	}
	if v, ok := os.LookupEnv(EnvMaxCells); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidConfig, EnvMaxCells, v)
		}
		c.MaxCells = n
	}
	if v, ok := os.LookupEnv(EnvLegacyBounds); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q must be a boolean", ErrInvalidConfig, EnvLegacyBounds, v)
		}
		c.LegacyBounds = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MaxWeight < 1 || c.MaxWeight > gridgraph.MaxWeightLimit {
		return fmt.Errorf("%w: max_weight must lie in [1, %d], got %d", ErrInvalidConfig, gridgraph.MaxWeightLimit, c.MaxWeight)
	}
	if c.MaxCells < 1 {
		return fmt.Errorf("%w: max_cells must be at least 1, got %d", ErrInvalidConfig, c.MaxCells)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// Bounds returns the gridio bounds mode selected by LegacyBounds.
func (c Config) Bounds() gridio.BoundsMode {
	if c.LegacyBounds {
		return gridio.BoundsLegacy
	}

	return gridio.BoundsStrict
}

// ReadOptions converts c into gridio options.
func (c Config) ReadOptions() []gridio.Option {
	return []gridio.Option{
		gridio.WithBounds(c.Bounds()),
		gridio.WithMaxWeight(c.MaxWeight),
		gridio.WithMaxCells(c.MaxCells),
	}
}
