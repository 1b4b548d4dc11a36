// SPDX-License-Identifier: MIT

package magic

import "fmt"

// Tier is the display bucket of a raw severity level.
// Renderers map tiers to their own presentation (colour, CSS class, marker).
type Tier int

const (
	// TierNeutral marks a cell none of whose lines deviate.
	TierNeutral Tier = iota
	// TierOne marks a cell on exactly one deviating line.
	TierOne
	// TierTwo marks a cell on two deviating lines.
	TierTwo
	// TierThree marks a cell on three or more deviating lines (maximum).
	TierThree
)

// MaxTier is the saturation point of TierFor.
const MaxTier = TierThree

// TierFor maps a raw severity level to its tier: monotonic, saturating at
// TierThree. Negative levels map to TierNeutral.
func TierFor(level int) Tier {
	switch {
	case level <= 0:
		return TierNeutral
	case level >= int(MaxTier):
		return MaxTier
	default:
		return Tier(level)
	}
}

// String returns "neutral", "tier-1", "tier-2" or "tier-3".
func (t Tier) String() string {
	if t == TierNeutral {
		return "neutral"
	}
	if t > TierNeutral && t <= MaxTier {
		return fmt.Sprintf("tier-%d", int(t))
	}

	return fmt.Sprintf("Tier(%d)", int(t))
}
