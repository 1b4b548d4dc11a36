// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command line front end.
// Library packages never log; they return diagnostics as values and the CLI
// reports them here.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/magicsquare/magic"
)

// ErrUnknownLevel indicates an unrecognised level name.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Options configures New.
type Options struct {
	Level       string   // debug|info|warn|error; "" means info
	Verbose     bool     // forces debug
	Development bool     // human-readable console encoder
	OutputPaths []string // defaults to stderr
}

// ParseLevel maps a level name to a zapcore.Level using zap's own names,
// case-insensitively. "" means info and "warning" is accepted for warn.
func ParseLevel(s string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return level, nil
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

// Report logs the verdict of one analysed grid at info level and each
// advisory diagnostic at warn level.
func Report(logger *zap.Logger, source string, rep magic.Report) {
	for _, d := range rep.Classification.Diagnostics {
		logger.Warn(d.Message, zap.String("source", source), zap.String("code", d.Code))
	}
	fields := []zap.Field{
		zap.String("source", source),
		zap.Int("rows", rep.Shape.Rows),
		zap.Int("cols", rep.Shape.Cols),
		zap.Bool("magic", rep.Sums.IsMagicSquare),
		zap.String("validation", rep.Validation),
	}
	if m := rep.Classification.Majority; m.Defined {
		fields = append(fields, zap.Int("majority", m.Value), zap.Int("majority_count", m.Count))
	}
	logger.Info("grid analysed", fields...)
}
