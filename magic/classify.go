// SPDX-License-Identifier: MIT

package magic

import "fmt"

const opClassifySeverity = "ClassifySeverity"

// Majority is the most frequent line sum. Defined is false in the anti-magic
// case (every sum distinct); then no line matches it.
type Majority struct {
	Value   int  `json:"value" yaml:"value"`
	Count   int  `json:"count" yaml:"count"`
	Defined bool `json:"defined" yaml:"defined"`
}

// Matches reports whether sum equals a defined majority.
func (m Majority) Matches(sum int) bool { return m.Defined && sum == m.Value }

// DiagnosticKind enumerates the advisory conditions of ClassifySeverity.
type DiagnosticKind int

const (
	// DiagnosticAntiMagic: every line sum is distinct; the majority is undefined.
	DiagnosticAntiMagic DiagnosticKind = iota + 1
	// DiagnosticNoStrictMajority: the majority sum covers at most half the lines.
	DiagnosticNoStrictMajority
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticAntiMagic:
		return "anti-magic"
	case DiagnosticNoStrictMajority:
		return "no-strict-majority"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is an advisory, non-fatal observation about the sums.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"-" yaml:"-"`
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
}

// SeverityGrid holds, per cell, the number of its lines that deviate from the
// majority. Same shape as the analysed grid.
type SeverityGrid [][]int

// At returns the raw severity of cell (r,c).
func (sg SeverityGrid) At(r, c int) int { return sg[r][c] }

// Tier returns the display tier of cell (r,c).
func (sg SeverityGrid) Tier(r, c int) Tier { return TierFor(sg[r][c]) }

// Tiers maps every cell to its display tier.
func (sg SeverityGrid) Tiers() [][]Tier {
	out := make([][]Tier, len(sg))
	for r, row := range sg {
		out[r] = make([]Tier, len(row))
		for c, level := range row {
			out[r][c] = TierFor(level)
		}
	}

	return out
}

// Max returns the highest raw severity, 0 for an all-neutral grid.
func (sg SeverityGrid) Max() int {
	best := 0
	for _, row := range sg {
		for _, level := range row {
			if level > best {
				best = level
			}
		}
	}

	return best
}

// Classification is the result of ClassifySeverity.
type Classification struct {
	Shape       Shape        `json:"shape" yaml:"shape"`
	Total       int          `json:"total" yaml:"total"`
	Majority    Majority     `json:"majority" yaml:"majority"`
	Severity    SeverityGrid `json:"severity" yaml:"severity"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Deviates reports whether a line with this sum differs from the majority.
// With an undefined majority every line deviates.
func (c Classification) Deviates(sum int) bool { return !c.Majority.Matches(sum) }

// Has reports whether a diagnostic of kind k was emitted.
func (c Classification) Has(k DiagnosticKind) bool {
	for _, d := range c.Diagnostics {
		if d.Kind == k {
			return true
		}
	}

	return false
}

// ClassifySeverity picks the majority line sum and scores every cell by how
// many of its lines deviate from it.
//
// Stages:
//  1. Tally all R+C+2 sums; the majority is the most frequent value, ties
//     broken by first appearance in row→column→diagonal order.
//  2. All sums distinct → DiagnosticAntiMagic, majority undefined.
//     Otherwise majority count ≤ total/2 → DiagnosticNoStrictMajority.
//  3. +1 to each cell of a deviating row, column, diagonal_1 (cells (i,C-1-i))
//     and diagonal_2 (cells (i,i)).
//
// Diagnostics are advisory and never stop the computation.
//
// Errors:
//   - ErrShapeMismatch if shape is non-positive or len(rows) != shape.Rows or
//     len(columns) != shape.Cols.
//
// Complexity: O(R×C) time and memory.
func ClassifySeverity(shape Shape, rows, columns []int, diagonals [2]int) (Classification, error) {
	if shape.Rows <= 0 || shape.Cols <= 0 || len(rows) != shape.Rows || len(columns) != shape.Cols {
		return Classification{}, magicErrorf(opClassifySeverity,
			fmt.Errorf("%w: shape %dx%d, %d row sums, %d column sums",
				ErrShapeMismatch, shape.Rows, shape.Cols, len(rows), len(columns)))
	}

	return classify(shape, rows, columns, diagonals), nil
}

// classify is ClassifySeverity without the shape check.
func classify(shape Shape, rows, columns []int, diagonals [2]int) Classification {
	total := shape.Total()
	all := make([]int, 0, total)
	all = append(all, rows...)
	all = append(all, columns...)
	all = append(all, diagonals[0], diagonals[1])

	cls := Classification{Shape: shape, Total: total}

	// Stage 1: tally in first-seen order so ties resolve deterministically.
	counts := make(map[int]int, total)
	order := make([]int, 0, total)
	for _, v := range all {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	cls.Majority = Majority{Value: best, Count: counts[best], Defined: true}

	// Stage 2: advisory diagnostics.
	if len(order) == total {
		cls.Majority = Majority{}
		cls.Diagnostics = append(cls.Diagnostics, Diagnostic{
			Kind:    DiagnosticAntiMagic,
			Code:    DiagnosticAntiMagic.String(),
			Message: fmt.Sprintf("all %d sums are unique values (anti-magic configuration)", total),
		})
	} else if 2*cls.Majority.Count <= total {
		cls.Diagnostics = append(cls.Diagnostics, Diagnostic{
			Kind: DiagnosticNoStrictMajority,
			Code: DiagnosticNoStrictMajority.String(),
			Message: fmt.Sprintf("no majority (>50%%) sum: %d occurs %d of %d times (%.1f%%)",
				cls.Majority.Value, cls.Majority.Count, total,
				100*float64(cls.Majority.Count)/float64(total)),
		})
	}

	// Stage 3: accumulate per-cell severity.
	sev := make(SeverityGrid, shape.Rows)
	for r := range sev {
		sev[r] = make([]int, shape.Cols)
	}
	var r, c int
	for r = 0; r < shape.Rows; r++ {
		if cls.Deviates(rows[r]) {
			for c = 0; c < shape.Cols; c++ {
				sev[r][c]++
			}
		}
	}
	for c = 0; c < shape.Cols; c++ {
		if cls.Deviates(columns[c]) {
			for r = 0; r < shape.Rows; r++ {
				sev[r][c]++
			}
		}
	}
	n := shape.DiagonalLen()
	if cls.Deviates(diagonals[0]) {
		for r = 0; r < n; r++ {
			sev[r][shape.Cols-1-r]++
		}
	}
	if cls.Deviates(diagonals[1]) {
		for r = 0; r < n; r++ {
			sev[r][r]++
		}
	}
	cls.Severity = sev

	return cls
}
