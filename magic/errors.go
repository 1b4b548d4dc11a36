// SPDX-License-Identifier: MIT

package magic

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates sum slices whose lengths disagree with the shape,
	// or a non-positive shape.
	ErrShapeMismatch = errors.New("magic: sums do not match grid shape")

	// ErrUnknownValidation indicates an unrecognised validation mode name.
	ErrUnknownValidation = errors.New("magic: unknown validation mode")

	// ErrUnsupportedOrder indicates Generate was asked for an order it cannot build
	// (non-positive or even).
	ErrUnsupportedOrder = errors.New("magic: unsupported square order")
)

// magicErrorf wraps err with a call-site tag; errors.Is keeps matching the sentinel.
func magicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
