// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Operation tags used when wrapping errors.
const (
	opParse    = "Parse"
	opReadFile = "ReadFile"
)

// Parse reads a grid from whitespace-delimited integer text: one row per
// line, values separated by runs of spaces or tabs. Blank lines are ignored.
//
// Errors:
//   - *ParseError (matches ErrParse) for a non-integer token.
//   - ErrEmptyGrid when no row was read.
//   - ErrNonRectangular when rows differ in length.
//   - read errors from r, wrapped.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (*Grid, error) {
	var (
		values [][]int
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: err}
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, gridErrorf(opParse, err)
	}

	return New(values)
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gridErrorf(opReadFile, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, gridErrorf(opReadFile, err)
	}

	return g, nil
}
