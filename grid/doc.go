// SPDX-License-Identifier: MIT

// Package grid is the input boundary of the magic-square engine: it turns
// whitespace-delimited integer text into a validated, immutable rectangular
// grid.
//
// What:
//
//   - Grid wraps a non-empty rectangular [][]int, deep-copied on construction.
//   - Parse / ReadFile read one row per line, values separated by runs of
//     whitespace; blank lines are skipped.
//   - RequireSquare enforces the N×N shape magic-square semantics need.
//   - OddSided reports the conventional odd order; an even order is only
//     advisory and never invalidates the sums.
//
// Complexity:
//
//   - New / Parse: O(R×C) time and memory.
//   - At, Rows, Cols, OddSided: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonSquare: row count differs from column count.
//   - ErrParse: a token is not a base-10 integer (see ParseError).
package grid
