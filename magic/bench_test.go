// SPDX-License-Identifier: MIT

package magic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/magicsquare/magic"
)

// BenchmarkAnalyze_Magic measures Analyze on a 101×101 Siamese square.
// Complexity: O(N²).
func BenchmarkAnalyze_Magic(b *testing.B) {
	g, err := magic.Generate(101)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = magic.Analyze(g)
	}
}

// BenchmarkAnalyze_Random measures Analyze on a deterministic random 100×100 grid,
// where nearly every line deviates.
func BenchmarkAnalyze_Random(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = rng.Intn(1000)
		}
	}
	g := MustGrid(b, values)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = magic.Analyze(g)
	}
}
