// SPDX-License-Identifier: MIT

package magic

import (
	"fmt"
	"strings"
)

// ValidationMode selects how ComputeSums decides IsMagicSquare.
type ValidationMode int

const (
	// ValidationStrict requires a square grid whose R+C+2 sums are all equal.
	ValidationStrict ValidationMode = iota

	// ValidationAdjacent reproduces the legacy check: row_sum[i] vs row_sum[i-1]
	// and column_sum[i] vs column_sum[i-1] for i > 1 only; diagonals ignored.
	ValidationAdjacent
)

// DefaultValidation is the mode used when no WithValidation option is given.
const DefaultValidation = ValidationStrict

const panicValidationInvalid = "magic: WithValidation: unknown validation mode"

// String returns the config/flag spelling of m.
func (m ValidationMode) String() string {
	switch m {
	case ValidationStrict:
		return "strict"
	case ValidationAdjacent:
		return "adjacent"
	default:
		return fmt.Sprintf("ValidationMode(%d)", int(m))
	}
}

// ParseValidationMode maps "strict" or "adjacent" (case-insensitive) to a mode.
// The empty string selects DefaultValidation.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ValidationStrict, nil
	case "adjacent", "legacy":
		return ValidationAdjacent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownValidation, s)
	}
}

func (m ValidationMode) valid() bool {
	return m == ValidationStrict || m == ValidationAdjacent
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	validation ValidationMode // DefaultValidation
}

// WithValidation selects the validity check used by ComputeSums.
// Panics on an unknown mode (programmer error); parse user input with
// ParseValidationMode first.
func WithValidation(mode ValidationMode) Option {
	if !mode.valid() {
		panic(panicValidationInvalid)
	}

	return func(o *Options) { o.validation = mode }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validation: DefaultValidation}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
