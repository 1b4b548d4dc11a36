// SPDX-License-Identifier: MIT

package magic

import (
	"fmt"

	"github.com/katalvlaran/magicsquare/grid"
)

const opGenerate = "Generate"

// Constant returns the magic constant n(n²+1)/2 of a normal square of order n.
func Constant(n int) int { return n * (n*n + 1) / 2 }

// Generate builds a normal magic square of odd order n (values 1..n²) with the
// Siamese method: start in the middle of the top row, step up-right with
// wrap-around, and drop one row down when the target cell is taken.
//
// Errors:
//   - ErrUnsupportedOrder for n < 1 or even n.
//
// Complexity: O(n²).
func Generate(n int) (*grid.Grid, error) {
	if n < 1 || n%2 == 0 {
		return nil, magicErrorf(opGenerate, fmt.Errorf("%w: %d", ErrUnsupportedOrder, n))
	}
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
	}

	r, c := 0, n/2
	for k := 1; k <= n*n; k++ {
		cells[r][c] = k
		nr, nc := (r-1+n)%n, (c+1)%n
		if cells[nr][nc] != 0 {
			nr, nc = (r+1)%n, c
		}
		r, c = nr, nc
	}

	return grid.New(cells)
}
