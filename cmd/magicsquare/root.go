// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/magicsquare/internal/config"
	"github.com/katalvlaran/magicsquare/internal/logging"
)

// defaultFile is analysed and printed when no input is given.
const defaultFile = "test_data/bad_data.txt"

// app carries the resolved settings between cobra hooks.
type app struct {
	out    io.Writer
	cfg    config.Config
	logger *zap.Logger // preset loggers are kept as-is
	color  bool
}

func newApp(out io.Writer) *app {
	return &app{out: out}
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "magicsquare [flags] [file.txt ...]",
		Short: "Check magic squares and highlight deviating sums",
		Long: `magicsquare reads grids of whitespace-separated integers (one row per line),
sums every row, column and both main diagonals, and reports whether the grid is a
magic square. With --print the grid is drawn with borders, sums outside the border,
and each cell coloured by how many of its lines miss the majority sum.

With no input, ` + defaultFile + ` is analysed and printed. A grid file named
"version" must be given as ./version or with --file.`,
		Args:              cobra.ArbitraryArgs,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runAnalyze,
	}
	root.SetOut(a.out)

	// Global flags
	root.PersistentFlags().String("config", "", "path to a TOML config file (default ./"+config.DefaultFile+" if present)")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")

	root.Flags().StringArrayP("file", "f", nil, "grid file to analyse (repeatable)")
	root.Flags().IntP("size", "s", 0, "analyse a generated odd-order magic square of this size")
	root.Flags().BoolP("print", "p", false, "draw the grid with borders and coloured cells")
	root.Flags().String("format", "", "output format (text|json|yaml)")
	root.Flags().String("validation", "", "magic-square check (strict|adjacent)")
	root.Flags().Int("cell-width", 0, "inner width of a bordered cell")
	root.Flags().Int("jobs", 0, "max files analysed in parallel (0=GOMAXPROCS)")
	root.MarkFlagsMutuallyExclusive("file", "size")

	root.AddCommand(newVersionCmd())

	return root
}

// setup resolves config (defaults < file < env < flags) and the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path, nil)
	if err != nil {
		return err
	}

	for name, dst := range map[string]*string{
		"color":      &cfg.Color,
		"log-level":  &cfg.LogLevel,
		"format":     &cfg.Format,
		"validation": &cfg.Validation,
	} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}
	for name, dst := range map[string]*int{
		"cell-width": &cfg.CellWidth,
		"jobs":       &cfg.Jobs,
	} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetInt(name); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if a.logger == nil {
		if a.logger, err = logging.New(logging.Options{Level: cfg.LogLevel, Verbose: verbose}); err != nil {
			return err
		}
	}

	switch cfg.Color {
	case config.ColorOn:
		a.color = true
	case config.ColorOff:
		a.color = false
	default:
		a.color = isTerminal(a.out)
	}
	a.logger.Debug("configuration resolved",
		zap.String("validation", cfg.Validation),
		zap.String("format", cfg.Format),
		zap.Bool("color", a.color),
		zap.Int("workers", cfg.Workers()))

	return nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "magicsquare %s\n", version)
			return err
		},
	}
}
