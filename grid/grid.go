// SPDX-License-Identifier: MIT

package grid

// Grid is a validated, immutable rectangular grid of integers.
// Cells are stored row-major; cells[r][c] holds the input value at row r,
// column c. A Grid is safe for concurrent readers.
type Grid struct {
	rows, cols int
	cells      [][]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Square is New followed by RequireSquare.
func Square(values [][]int) (*Grid, error) {
	g, err := New(values)
	if err != nil {
		return nil, err
	}
	if err = g.RequireSquare(); err != nil {
		return nil, err
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// IsSquare reports whether Rows() == Cols().
func (g *Grid) IsSquare() bool { return g.rows == g.cols }

// OddSided reports whether both sides have odd length. Odd orders are the
// conventional magic-square sizes; an even order does not change the sums.
func (g *Grid) OddSided() bool { return g.rows%2 == 1 && g.cols%2 == 1 }

// RequireSquare returns ErrNonSquare when the grid is not N×N.
func (g *Grid) RequireSquare() error {
	if !g.IsSquare() {
		return ErrNonSquare
	}

	return nil
}

// At returns the value at row r, column c.
// It panics like a slice index when (r,c) is out of bounds.
func (g *Grid) At(r, c int) int { return g.cells[r][c] }

// Row returns a copy of row r.
func (g *Grid) Row(r int) []int {
	out := make([]int, g.cols)
	copy(out, g.cells[r])

	return out
}

// Values returns a deep copy of all cells.
// Complexity: O(R×C).
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = g.Row(r)
	}

	return out
}
