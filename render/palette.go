// SPDX-License-Identifier: MIT

package render

import (
	"github.com/fatih/color"

	"github.com/katalvlaran/magicsquare/magic"
)

// Palette maps severity tiers and message tags to terminal colours.
// A nil entry prints plain text.
type Palette struct {
	Tiers [magic.MaxTier + 1]*color.Color
	Label *color.Color // deviating sum labels
	Info  *color.Color // [INFO] tag
	Warn  *color.Color // [WARN] tag
	Fatal *color.Color // [FATAL] tag
}

// DefaultPalette returns blue/yellow/red tiers. When enabled is false every
// colour is disabled, regardless of terminal detection in fatih/color.
func DefaultPalette(enabled bool) Palette {
	p := Palette{
		Tiers: [magic.MaxTier + 1]*color.Color{
			magic.TierNeutral: nil,
			magic.TierOne:     color.New(color.FgHiBlue),
			magic.TierTwo:     color.New(color.FgHiYellow),
			magic.TierThree:   color.New(color.FgHiRed),
		},
		Label: color.New(color.FgHiBlue),
		Info:  color.New(color.Bold),
		Warn:  color.New(color.FgHiYellow),
		Fatal: color.New(color.FgHiRed),
	}
	for _, c := range p.all() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// PlainPalette prints everything uncoloured.
func PlainPalette() Palette { return Palette{} }

func (p Palette) all() []*color.Color {
	out := make([]*color.Color, 0, len(p.Tiers)+4)
	for _, c := range p.Tiers {
		if c != nil {
			out = append(out, c)
		}
	}

	return append(out, p.Label, p.Info, p.Warn, p.Fatal)
}

// Tier returns the colour for t, saturating at MaxTier.
func (p Palette) Tier(t magic.Tier) *color.Color {
	if t < magic.TierNeutral {
		t = magic.TierNeutral
	}
	if t > magic.MaxTier {
		t = magic.MaxTier
	}

	return p.Tiers[t]
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}

	return c.Sprint(s)
}
