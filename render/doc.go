// SPDX-License-Identifier: MIT

// Package render turns a magic.Report into output: a render Model (cell
// values, severity tiers, sum labels with deviation flags), a bordered
// terminal drawing coloured by tier, and structured json/yaml encodings.
//
// The engine only emits abstract tiers; this package alone owns colours.
// Palette maps tier-1 to blue, tier-2 to yellow and tier-3 to red, and
// highlights deviating sum labels in blue.
package render
