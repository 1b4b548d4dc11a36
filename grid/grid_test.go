// SPDX-License-Identifier: MIT

package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicsquare/grid"
)

//----------------------------------------------------------------------------//
// New and shape tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures caller mutation after construction is invisible.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = 99
	assert.Equal(t, 1, g.At(0, 0), "grid must not alias caller storage")

	out := g.Values()
	out[1][1] = 77
	assert.Equal(t, 4, g.At(1, 1), "Values must return a copy")

	row := g.Row(0)
	row[1] = 55
	assert.Equal(t, 2, g.At(0, 1), "Row must return a copy")
}

// TestShapePredicates checks IsSquare, OddSided and RequireSquare.
func TestShapePredicates(t *testing.T) {
	cases := []struct {
		name     string
		values   [][]int
		square   bool
		oddSided bool
	}{
		{"1x1", [][]int{{5}}, true, true},
		{"3x3", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, true, true},
		{"2x2", [][]int{{1, 2}, {3, 4}}, true, false},
		{"2x3", [][]int{{1, 2, 3}, {4, 5, 6}}, false, false},
		{"3x1", [][]int{{1}, {2}, {3}}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.values)
			require.NoError(t, err)
			assert.Equal(t, len(tc.values), g.Rows())
			assert.Equal(t, len(tc.values[0]), g.Cols())
			assert.Equal(t, tc.square, g.IsSquare())
			assert.Equal(t, tc.oddSided, g.OddSided())
			if tc.square {
				assert.NoError(t, g.RequireSquare())
			} else {
				assert.ErrorIs(t, g.RequireSquare(), grid.ErrNonSquare)
			}
		})
	}
}

// TestSquare combines construction and the square check.
func TestSquare(t *testing.T) {
	_, err := grid.Square([][]int{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, grid.ErrNonSquare)

	_, err = grid.Square([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	g, err := grid.Square([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.True(t, g.IsSquare())
}
