// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsquare/grid"
	"github.com/katalvlaran/magicsquare/magic"
	"github.com/katalvlaran/magicsquare/render"
)

func analyze(t *testing.T, values [][]int) magic.Report {
	t.Helper()
	g, err := grid.New(values)
	require.NoError(t, err)

	return magic.Analyze(g)
}

var (
	loShu  = [][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}}
	offOne = [][]int{{2, 7, 6}, {9, 5, 2}, {4, 3, 8}} // row 2 and column 3 sum to 16
)

//----------------------------------------------------------------------------//
// Model
//----------------------------------------------------------------------------//

func TestNewModel_Labels(t *testing.T) {
	m := render.NewModel(analyze(t, offOne))

	require.Len(t, m.Columns, 3)
	require.Len(t, m.Rows, 3)
	assert.Equal(t, render.Label{Text: "c3: 16", Deviates: true}, m.Columns[2])
	assert.Equal(t, render.Label{Text: "c1: 15", Deviates: false}, m.Columns[0])
	assert.Equal(t, render.Label{Text: "r2: 16", Deviates: true}, m.Rows[1])
	assert.Equal(t, render.Label{Text: "d1: 15", Deviates: false}, m.Diagonal1)
	assert.Equal(t, render.Label{Text: "d2: 15", Deviates: false}, m.Diagonal2)
	assert.Equal(t, magic.TierTwo, m.Tiers[1][2])
	assert.Equal(t, "invalid magic square! some sums are not equal to '15'", m.Verdict())
}

func TestModel_Verdict(t *testing.T) {
	assert.Equal(t, "valid magic square! all sums are equal",
		render.NewModel(analyze(t, loShu)).Verdict())
	assert.Equal(t, "invalid magic square! all sums are unique",
		render.NewModel(analyze(t, [][]int{{1, 2, 4}, {8, 16, 32}, {64, 128, 256}})).Verdict())
}

//----------------------------------------------------------------------------//
// Terminal
//----------------------------------------------------------------------------//

func TestTerminal_PlainLayout(t *testing.T) {
	var buf bytes.Buffer
	term := render.Terminal{Out: &buf, CellWidth: 10, Palette: render.PlainPalette()}
	require.NoError(t, term.Render(render.NewModel(analyze(t, loShu))))

	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"[INFO] valid magic square! all sums are equal",
		"",
		"  c1: 15     c2: 15     c3: 15       d1: 15",
		" __________ __________ __________",
		"|          |          |          |",
		"|    2     |    7     |    6     |     r1: 15",
		"|__________|__________|__________|",
		"|          |          |          |",
		"|    9     |    5     |    1     |     r2: 15",
		"|__________|__________|__________|",
		"|          |          |          |",
		"|    4     |    3     |    8     |     r3: 15",
		"|__________|__________|__________|",
		"",
		strings.Repeat(" ", 33) + "    d2: 15",
		"",
	}
	assert.Equal(t, want, lines)
	assert.NotContains(t, buf.String(), "\x1b[", "plain palette must not emit escapes")
}

func TestTerminal_DefaultCellWidth(t *testing.T) {
	var buf bytes.Buffer
	term := render.Terminal{Out: &buf, Palette: render.PlainPalette()}
	require.NoError(t, term.Render(render.NewModel(analyze(t, [][]int{{7}}))))
	assert.Contains(t, buf.String(), "|"+strings.Repeat("_", render.DefaultCellWidth)+"|")
}

func TestTerminal_ColouredTiers(t *testing.T) {
	var buf bytes.Buffer
	term := render.Terminal{Out: &buf, CellWidth: 6, Palette: render.DefaultPalette(true)}
	require.NoError(t, term.Render(render.NewModel(analyze(t, offOne))))
	out := buf.String()

	assert.Contains(t, out, "\x1b[91m[FATAL]\x1b[0m", "verdict tag in red")
	assert.Contains(t, out, "\x1b[93m  2   \x1b[0m", "cell (1,2) is tier-2 yellow")
	assert.Contains(t, out, "\x1b[94m  9   \x1b[0m", "cell (1,0) is tier-1 blue")
	assert.Contains(t, out, "\x1b[94m r2: 16\x1b[0m", "deviating row label in blue")
	assert.Contains(t, out, "  2   |", "neutral cells are not wrapped")
}

func TestTerminal_WarnsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	term := render.Terminal{Out: &buf, Palette: render.DefaultPalette(false)}
	require.NoError(t, term.Render(render.NewModel(analyze(t, [][]int{{1, 2, 4}, {8, 16, 32}, {64, 128, 256}}))))

	assert.Contains(t, buf.String(), "[WARN] all 8 sums are unique values")
	assert.NotContains(t, buf.String(), "\x1b[", "disabled palette must not emit escapes")
}

func TestPalette_TierSaturates(t *testing.T) {
	p := render.DefaultPalette(true)
	assert.Same(t, p.Tiers[magic.TierThree], p.Tier(magic.Tier(7)))
	assert.Nil(t, p.Tier(magic.TierNeutral))
}

//----------------------------------------------------------------------------//
// Encode
//----------------------------------------------------------------------------//

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{
		"": render.FormatText, "text": render.FormatText, "JSON": render.FormatJSON, " yaml ": render.FormatYAML,
	} {
		got, err := render.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := render.ParseFormat("xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, analyze(t, offOne), render.FormatJSON))

	var got struct {
		Sums struct {
			Rows          []int `json:"rows"`
			IsMagicSquare bool  `json:"is_magic_square"`
		} `json:"sums"`
		Classification struct {
			Majority struct {
				Value int `json:"value"`
				Count int `json:"count"`
			} `json:"majority"`
			Severity [][]int `json:"severity"`
		} `json:"classification"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []int{15, 16, 15}, got.Sums.Rows)
	assert.False(t, got.Sums.IsMagicSquare)
	assert.Equal(t, 15, got.Classification.Majority.Value)
	assert.Equal(t, 6, got.Classification.Majority.Count)
	assert.Equal(t, [][]int{{0, 0, 1}, {1, 1, 2}, {0, 0, 1}}, got.Classification.Severity)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Encode(&buf, analyze(t, loShu), render.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "strict", got["validation"])
	assert.Equal(t, true, got["odd_sided"])
	sums, ok := got["sums"].(map[string]any)
	require.True(t, ok, "sums must be a mapping")
	assert.Equal(t, true, sums["is_magic_square"])
}

func TestEncode_TextIsNotAnEncoding(t *testing.T) {
	err := render.Encode(&bytes.Buffer{}, analyze(t, loShu), render.FormatText)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
