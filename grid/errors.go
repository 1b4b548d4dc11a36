// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonSquare indicates the row count differs from the column count.
	ErrNonSquare = errors.New("grid: grid is not square")
	// ErrParse indicates a token that is not a base-10 integer.
	ErrParse = errors.New("grid: invalid integer")
)

// ParseError describes the offending token of a failed Parse.
// It matches ErrParse via errors.Is.
type ParseError struct {
	Line  int    // 1-based line number in the source text
	Token string // raw token that failed to parse
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: line %d: invalid integer %q", e.Line, e.Token)
}

// Is reports ErrParse so callers can match without a type assertion.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// gridErrorf wraps err with the operation tag, keeping errors.Is matching intact.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
