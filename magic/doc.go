// SPDX-License-Identifier: MIT

// Package magic is the magic-square analysis engine.
//
// Two pure stages cooperate:
//
//   - Sum Calculator (ComputeSums): row, column and both main-diagonal sums of a
//     grid.Grid plus the magic-square verdict.
//   - Severity Classifier (ClassifySeverity): picks the majority sum and counts,
//     per cell, how many of its lines (row, column, diagonals) deviate from it.
//
// Analyze composes both into a Report. Nothing here performs I/O, logs or keeps
// state between calls; every result is a fresh value, so all entry points are
// safe for concurrent use.
//
// Diagonal naming is fixed:
//
//	diagonal_1  anti-diagonal  '/'   cell (i, C-1-i)
//	diagonal_2  main diagonal  '\'   cell (i, i)
//
// Validation modes:
//
//   - ValidationStrict (default): square grid and all R+C+2 sums identical.
//   - ValidationAdjacent: legacy scan comparing each row/column sum with its
//     predecessor for indices > 1 only, diagonals ignored. It misses a
//     mismatch between the first two lines and any diagonal mismatch; keep it
//     only for compatibility with old verdicts.
//
// Severity tiers saturate: 0 neutral, 1, 2, and 3 for anything ≥ 3.
//
// Example:
//
//	g, _ := grid.Square([][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}})
//	rep := magic.Analyze(g)
//	fmt.Println(rep.Sums.IsMagicSquare, rep.Classification.Majority.Value) // true 15
package magic
