// SPDX-License-Identifier: MIT

package magic_test

import (
	"testing"

	"github.com/katalvlaran/magicsquare/grid"
)

// lo3 is the Lo Shu square, magic constant 15.
var lo3 = [][]int{
	{2, 7, 6},
	{9, 5, 1},
	{4, 3, 8},
}

// powers3 has all eight line sums distinct:
// rows 7,56,448; columns 73,146,292; diagonal_1 84; diagonal_2 273.
var powers3 = [][]int{
	{1, 2, 4},
	{8, 16, 32},
	{64, 128, 256},
}

// MustGrid builds a grid.Grid or fails the test.
func MustGrid(t testing.TB, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(values)
	if err != nil {
		t.Fatalf("grid.New(%v): %v", values, err)
	}

	return g
}
