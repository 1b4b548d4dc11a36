// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magicsquare/grid"
	"github.com/katalvlaran/magicsquare/internal/logging"
	"github.com/katalvlaran/magicsquare/magic"
	"github.com/katalvlaran/magicsquare/render"
)

// errFilesAndSize rejects positional files combined with --size.
var errFilesAndSize = errors.New("either pass files or --size, not both")

// input is one grid to analyse: a file path or a generated square.
type input struct {
	name string
	load func() (*grid.Grid, error)
}

// runAnalyze resolves the inputs, analyses them concurrently and writes the
// results in input order.
func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	files, err := flags.GetStringArray("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	size, err := flags.GetInt("size")
	if err != nil {
		return fmt.Errorf("failed to get size flag: %w", err)
	}
	printGrid, err := flags.GetBool("print")
	if err != nil {
		return fmt.Errorf("failed to get print flag: %w", err)
	}
	files = append(files, args...)

	var inputs []input
	switch {
	case flags.Changed("size") && len(files) > 0:
		return errFilesAndSize
	case flags.Changed("size"):
		inputs = []input{{
			name: "size " + strconv.Itoa(size),
			load: func() (*grid.Grid, error) { return magic.Generate(size) },
		}}
	case len(files) == 0:
		a.logger.Debug("no input given, using default", zap.String("file", defaultFile))
		files = []string{defaultFile}
		printGrid = true
		fallthrough
	default:
		for _, path := range files {
			inputs = append(inputs, input{name: path, load: func() (*grid.Grid, error) { return grid.ReadFile(path) }})
		}
	}

	reports, err := a.analyzeAll(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	return a.write(inputs, reports, printGrid)
}

// analyzeAll loads and analyses inputs with at most cfg.Workers() in flight.
// The first failure cancels the rest.
func (a *app) analyzeAll(ctx context.Context, inputs []input) ([]magic.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]magic.Report, len(inputs))
	opts := []magic.Option{magic.WithValidation(a.cfg.ValidationMode())}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers())
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gr, err := in.load()
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			a.logger.Debug("grid loaded", zap.String("source", in.name),
				zap.Int("rows", gr.Rows()), zap.Int("cols", gr.Cols()))
			if !gr.OddSided() {
				a.logger.Warn("grid is not an odd sided square",
					zap.String("source", in.name), zap.Int("rows", gr.Rows()), zap.Int("cols", gr.Cols()))
			}
			if err = gr.RequireSquare(); err != nil {
				return fmt.Errorf("%s: %dx%d: %w", in.name, gr.Rows(), gr.Cols(), err)
			}
			reports[i] = magic.Analyze(gr, opts...)
			logging.Report(a.logger, in.name, reports[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// write emits the reports in the configured format.
func (a *app) write(inputs []input, reports []magic.Report, printGrid bool) error {
	switch f := a.cfg.OutputFormat(); f {
	case render.FormatJSON, render.FormatYAML:
		if len(reports) == 1 {
			return render.Encode(a.out, reports[0], f)
		}
		tagged := make([]render.FileReport, len(reports))
		for i := range reports {
			tagged[i] = render.FileReport{Source: inputs[i].name, Report: reports[i]}
		}
		return render.Encode(a.out, tagged, f)
	}

	if !printGrid {
		for i, rep := range reports {
			if _, err := fmt.Fprintf(a.out, "%s: %s\n", inputs[i].name, render.NewModel(rep).Verdict()); err != nil {
				return err
			}
		}
		return nil
	}

	tw := render.Terminal{Out: a.out, CellWidth: a.cfg.CellWidth, Palette: render.DefaultPalette(a.color)}
	for i, rep := range reports {
		if len(reports) > 1 {
			if _, err := fmt.Fprintf(a.out, "== %s ==\n", inputs[i].name); err != nil {
				return err
			}
		}
		if err := tw.Render(render.NewModel(rep)); err != nil {
			return err
		}
	}

	return nil
}
