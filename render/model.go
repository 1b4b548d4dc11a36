// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/magicsquare/magic"
)

// Label is a sum caption drawn outside the border, e.g. "c2: 15".
type Label struct {
	Text     string
	Deviates bool
}

// Model is everything a renderer needs; it carries no colour information.
type Model struct {
	Values      [][]int
	Tiers       [][]magic.Tier
	Columns     []Label // above the top border, left to right
	Rows        []Label // right of each row, top to bottom
	Diagonal1   Label   // top right corner
	Diagonal2   Label   // bottom right corner
	Magic       bool
	Majority    magic.Majority
	Diagnostics []magic.Diagnostic
}

// NewModel derives the render model from a report.
// Complexity: O(R×C).
func NewModel(rep magic.Report) Model {
	cls := rep.Classification
	m := Model{
		Values:      rep.Values,
		Tiers:       cls.Severity.Tiers(),
		Columns:     make([]Label, len(rep.Sums.Columns)),
		Rows:        make([]Label, len(rep.Sums.Rows)),
		Magic:       rep.Sums.IsMagicSquare,
		Majority:    cls.Majority,
		Diagnostics: cls.Diagnostics,
	}
	for j, v := range rep.Sums.Columns {
		m.Columns[j] = Label{Text: fmt.Sprintf("c%d: %d", j+1, v), Deviates: cls.Deviates(v)}
	}
	for i, v := range rep.Sums.Rows {
		m.Rows[i] = Label{Text: fmt.Sprintf("r%d: %d", i+1, v), Deviates: cls.Deviates(v)}
	}
	d1, d2 := rep.Sums.Diagonals[0], rep.Sums.Diagonals[1]
	m.Diagonal1 = Label{Text: fmt.Sprintf("d1: %d", d1), Deviates: cls.Deviates(d1)}
	m.Diagonal2 = Label{Text: fmt.Sprintf("d2: %d", d2), Deviates: cls.Deviates(d2)}

	return m
}

// Verdict is the one-line summary printed above the grid.
func (m Model) Verdict() string {
	switch {
	case m.Magic:
		return "valid magic square! all sums are equal"
	case m.Majority.Defined:
		return fmt.Sprintf("invalid magic square! some sums are not equal to '%d'", m.Majority.Value)
	default:
		return "invalid magic square! all sums are unique"
	}
}
