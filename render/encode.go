// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsquare/magic"
)

// Format selects the CLI output encoding.
type Format string

const (
	// FormatText prints verdict lines, or the bordered grid with --print.
	FormatText Format = "text"
	// FormatJSON encodes reports as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML encodes reports as YAML.
	FormatYAML Format = "yaml"
)

// FileReport tags a report with the input it was computed from.
type FileReport struct {
	Source string       `json:"source" yaml:"source"`
	Report magic.Report `json:"report" yaml:"report"`
}

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ParseFormat accepts text|json|yaml (case-insensitive); "" means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes v (a magic.Report or a slice of FileReport) as indented JSON
// or as YAML. FormatText is not an encoding; use Terminal for it.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
