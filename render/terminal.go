// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/magicsquare/magic"
)

// DefaultCellWidth is the inner width of one bordered cell.
const DefaultCellWidth = 10

// Terminal draws a Model as a bordered grid:
//
//	  c1: 15     c2: 15     c3: 15       d1: 15
//	 __________ __________ __________
//	|          |          |          |
//	|    2     |    7     |    6     |     r1: 15
//	|__________|__________|__________|
//	...
//
//	                                         d2: 15
//
// Cells are coloured by tier and deviating labels are highlighted.
type Terminal struct {
	Out       io.Writer
	CellWidth int // <= 0 selects DefaultCellWidth
	Palette   Palette
}

// Render writes the verdict, diagnostics and bordered grid of m.
func (t Terminal) Render(m Model) error {
	w := bufio.NewWriter(t.Out)
	width := t.CellWidth
	if width <= 0 {
		width = DefaultCellWidth
	}
	p := t.Palette

	// Verdict and advisory notes.
	if m.Magic {
		w.WriteString(paint(p.Info, "[INFO]") + " " + m.Verdict() + "\n")
	} else {
		w.WriteString(paint(p.Fatal, "[FATAL]") + " " + m.Verdict() + "\n")
	}
	for _, d := range m.Diagnostics {
		w.WriteString(paint(p.Warn, "[WARN]") + " " + d.Message + "\n")
	}
	w.WriteString("\n")

	// Column labels and diagonal_1 above the top border.
	for _, l := range m.Columns {
		w.WriteString(t.label(l, center(l.Text, width+1)))
	}
	w.WriteString(t.label(m.Diagonal1, runewidth.FillLeft(m.Diagonal1.Text, width)) + "\n")

	cols := len(m.Columns)
	underline := strings.Repeat("_", width)
	w.WriteString(strings.Repeat(" "+underline, cols) + "\n")

	inner := "|" + strings.Repeat(strings.Repeat(" ", width)+"|", cols) + "\n"
	bottom := strings.Repeat("|"+underline, cols) + "|\n"
	for i, row := range m.Values {
		w.WriteString(inner)
		w.WriteString("|")
		for j, v := range row {
			tier := magic.TierNeutral
			if i < len(m.Tiers) && j < len(m.Tiers[i]) {
				tier = m.Tiers[i][j]
			}
			w.WriteString(paint(p.Tier(tier), center(strconv.Itoa(v), width)) + "|")
		}
		if i < len(m.Rows) {
			w.WriteString(t.label(m.Rows[i], runewidth.FillLeft(m.Rows[i].Text, width+1)))
		}
		w.WriteString("\n")
		w.WriteString(bottom)
	}
	w.WriteString("\n")

	// diagonal_2 below the bottom border, past the last column.
	w.WriteString(strings.Repeat(" ", (width+1)*cols))
	w.WriteString(t.label(m.Diagonal2, runewidth.FillLeft(m.Diagonal2.Text, width)) + "\n")

	return w.Flush()
}

func (t Terminal) label(l Label, padded string) string {
	if !l.Deviates {
		return padded
	}

	return paint(t.Palette.Label, padded)
}

// center pads s to width w, extra space going to the right.
func center(s string, w int) string {
	n := runewidth.StringWidth(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
