// SPDX-License-Identifier: MIT

// Package magicsquare analyses integer grids as magic squares: it sums every
// row, column and main diagonal, decides whether they all agree, and grades
// each cell by how many of its lines miss the majority sum.
//
// The module is organised into small packages:
//
//	grid/            validated, immutable integer grids and a whitespace text reader
//	magic/           sum calculator, severity classifier, odd-order generator
//	render/          bordered terminal layout with tier colours, JSON/YAML encoders
//	internal/config  TOML file + MAGICSQUARE_* environment configuration
//	internal/logging zap logger construction and report logging
//	cmd/magicsquare  the command-line front end
//
// Quick start:
//
//	g, err := grid.New([][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	rep := magic.Analyze(g)
//	fmt.Println(rep.Sums.IsMagicSquare) // true
//
// The engine never performs I/O and never logs; advisory findings such as an
// anti-magic configuration are returned as diagnostics on the result.
package magicsquare
