// SPDX-License-Identifier: MIT

package magic

import "github.com/katalvlaran/magicsquare/grid"

// Report is the full analysis of one grid: its cells, the sums with the
// verdict, and the severity classification a renderer consumes.
type Report struct {
	Values         [][]int        `json:"values" yaml:"values"`
	Shape          Shape          `json:"shape" yaml:"shape"`
	OddSided       bool           `json:"odd_sided" yaml:"odd_sided"`
	Validation     string         `json:"validation" yaml:"validation"`
	Sums           Sums           `json:"sums" yaml:"sums"`
	Named          []NamedSum     `json:"named_sums" yaml:"named_sums"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// Analyze runs ComputeSums then ClassifySeverity on g.
// g must be non-nil. Complexity: O(R×C).
func Analyze(g *grid.Grid, opts ...Option) Report {
	shape := ShapeOf(g)
	sums := ComputeSums(g, opts...)

	return Report{
		Values:         g.Values(),
		Shape:          shape,
		OddSided:       g.OddSided(),
		Validation:     sums.Mode.String(),
		Sums:           sums,
		Named:          sums.Named(),
		Classification: classify(shape, sums.Rows, sums.Columns, sums.Diagonals),
	}
}
