// SPDX-License-Identifier: MIT

// Package config resolves CLI settings from defaults, an optional TOML file
// and MAGICSQUARE_* environment variables, in that order of precedence.
// Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/magicsquare/internal/logging"
	"github.com/katalvlaran/magicsquare/magic"
	"github.com/katalvlaran/magicsquare/render"
)

// DefaultFile is loaded from the working directory when no path is given.
const DefaultFile = "magicsquare.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAGICSQUARE_"

// Colour modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of the CLI.
type Config struct {
	// Validation is the magic-square check: strict|adjacent.
	Validation string `toml:"validation" env:"VALIDATION"`
	// Color is auto|on|off.
	Color string `toml:"color" env:"COLOR"`
	// Format is text|json|yaml.
	Format string `toml:"format" env:"FORMAT"`
	// CellWidth is the inner width of a bordered cell.
	CellWidth int `toml:"cell_width" env:"CELL_WIDTH"`
	// LogLevel is debug|info|warn|error.
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
	// Jobs bounds concurrent file analysis; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs" env:"JOBS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Validation: magic.DefaultValidation.String(),
		Color:      ColorAuto,
		Format:     string(render.FormatText),
		CellWidth:  render.DefaultCellWidth,
		LogLevel:   "info",
	}
}

// Load layers defaults, the TOML file at path and the environment.
// An empty path falls back to DefaultFile when it exists; an explicit path
// must exist. environ overrides the process environment when non-nil.
// The result is validated.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%w: unknown keys in %q: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting outside its allowed values.
func (c Config) Validate() error {
	if _, err := magic.ParseValidationMode(c.Validation); err != nil {
		return fmt.Errorf("%w: validation: %w", ErrInvalidConfig, err)
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("%w: color must be auto|on|off, got %q", ErrInvalidConfig, c.Color)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalidConfig, err)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("%w: cell_width must be > 0, got %d", ErrInvalidConfig, c.CellWidth)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must be >= 0, got %d", ErrInvalidConfig, c.Jobs)
	}

	return nil
}

// ValidationMode returns the parsed validation mode; Validate must have passed.
func (c Config) ValidationMode() magic.ValidationMode {
	mode, _ := magic.ParseValidationMode(c.Validation)

	return mode
}

// OutputFormat returns the parsed output format; Validate must have passed.
func (c Config) OutputFormat() render.Format {
	f, _ := render.ParseFormat(c.Format)

	return f
}

// Workers returns Jobs, or GOMAXPROCS when Jobs is 0.
func (c Config) Workers() int {
	if c.Jobs > 0 {
		return c.Jobs
	}

	return runtime.GOMAXPROCS(0)
}
