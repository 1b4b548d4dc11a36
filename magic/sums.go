// SPDX-License-Identifier: MIT

package magic

import (
	"strconv"

	"github.com/katalvlaran/magicsquare/grid"
)

// Fixed labels of the two main diagonals.
const (
	// LabelDiagonal1 names the anti-diagonal '/' (top-right to bottom-left).
	LabelDiagonal1 = "diagonal_1"
	// LabelDiagonal2 names the main diagonal '\' (top-left to bottom-right).
	LabelDiagonal2 = "diagonal_2"

	labelRowPrefix    = "row_"
	labelColumnPrefix = "column_"
)

// RowLabel returns the label of row i (0-based input, 1-based label): row_{i+1}.
func RowLabel(i int) string { return labelRowPrefix + strconv.Itoa(i+1) }

// ColumnLabel returns the label of column j (0-based input): column_{j+1}.
func ColumnLabel(j int) string { return labelColumnPrefix + strconv.Itoa(j+1) }

// NamedSum pairs a line label with its sum.
type NamedSum struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Shape is the row/column count of a grid.
type Shape struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// ShapeOf returns the shape of g.
func ShapeOf(g *grid.Grid) Shape { return Shape{Rows: g.Rows(), Cols: g.Cols()} }

// DiagonalLen is the number of cells on each main diagonal: min(Rows, Cols).
func (s Shape) DiagonalLen() int {
	if s.Rows < s.Cols {
		return s.Rows
	}

	return s.Cols
}

// Total is the number of line sums: Rows + Cols + 2 diagonals.
func (s Shape) Total() int { return s.Rows + s.Cols + 2 }

// Sums is the result of ComputeSums. Diagonals[0] is diagonal_1 (anti-diagonal),
// Diagonals[1] is diagonal_2 (main diagonal). The slices belong to the caller.
type Sums struct {
	Rows          []int          `json:"rows" yaml:"rows"`
	Columns       []int          `json:"columns" yaml:"columns"`
	Diagonals     [2]int         `json:"diagonals" yaml:"diagonals"`
	IsMagicSquare bool           `json:"is_magic_square" yaml:"is_magic_square"`
	Mode          ValidationMode `json:"-" yaml:"-"`
}

// Named returns the sums in display order:
// row_1..row_R, column_1..column_C, diagonal_1, diagonal_2.
func (s Sums) Named() []NamedSum {
	out := make([]NamedSum, 0, len(s.Rows)+len(s.Columns)+2)
	for i, v := range s.Rows {
		out = append(out, NamedSum{Label: RowLabel(i), Value: v})
	}
	for j, v := range s.Columns {
		out = append(out, NamedSum{Label: ColumnLabel(j), Value: v})
	}
	out = append(out,
		NamedSum{Label: LabelDiagonal1, Value: s.Diagonals[0]},
		NamedSum{Label: LabelDiagonal2, Value: s.Diagonals[1]},
	)

	return out
}

// All returns every sum flattened in row→column→diagonal order.
func (s Sums) All() []int {
	out := make([]int, 0, len(s.Rows)+len(s.Columns)+2)
	out = append(out, s.Rows...)
	out = append(out, s.Columns...)

	return append(out, s.Diagonals[0], s.Diagonals[1])
}

// Lookup returns the sum for label, e.g. "row_2" or "diagonal_1".
func (s Sums) Lookup(label string) (int, bool) {
	for _, ns := range s.Named() {
		if ns.Label == label {
			return ns.Value, true
		}
	}

	return 0, false
}

// ComputeSums sums every row, column and both main diagonals of g and decides
// whether g is a magic square under the selected ValidationMode.
//
// Diagonals run over the first min(R, C) rows:
//
//	diagonal_1 = Σ g[i][C-1-i]
//	diagonal_2 = Σ g[i][i]
//
// g must be non-nil; package grid guarantees it is non-empty and rectangular.
// ComputeSums never fails and is deterministic.
// Complexity: O(R×C) time, O(R+C) memory.
func ComputeSums(g *grid.Grid, opts ...Option) Sums {
	o := gatherOptions(opts...)
	rows, cols := g.Rows(), g.Cols()

	s := Sums{
		Rows:    make([]int, rows),
		Columns: make([]int, cols),
		Mode:    o.validation,
	}
	var r, c, v int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			v = g.At(r, c)
			s.Rows[r] += v
			s.Columns[c] += v
		}
	}
	n := Shape{Rows: rows, Cols: cols}.DiagonalLen()
	for r = 0; r < n; r++ {
		s.Diagonals[0] += g.At(r, cols-1-r)
		s.Diagonals[1] += g.At(r, r)
	}

	switch o.validation {
	case ValidationAdjacent:
		s.IsMagicSquare = adjacentEqual(s.Rows) && adjacentEqual(s.Columns)
	default:
		s.IsMagicSquare = rows == cols && allEqual(s.All())
	}

	return s
}

// adjacentEqual compares xs[i] with xs[i-1] for i > 1 only.
func adjacentEqual(xs []int) bool {
	for i := 2; i < len(xs); i++ {
		if xs[i] != xs[i-1] {
			return false
		}
	}

	return true
}

func allEqual(xs []int) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}

	return true
}
