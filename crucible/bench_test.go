package crucible_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/crucible"
)

// benchGrid builds a deterministic n×n grid with costs 1..9, the shape of
// a full-size puzzle input.
func benchGrid(b *testing.B, n int) *costgrid.Grid {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int64, n)
	for y := range rows {
		rows[y] = make([]int64, n)
		for x := range rows[y] {
			rows[y][x] = int64(1 + rng.Intn(9))
		}
	}
	g, err := costgrid.New(rows)
	if err != nil {
		b.Fatalf("setup costgrid.New failed: %v", err)
	}
	return g
}

// BenchmarkSearch_Crucible measures the 1..3 variant on a 141×141 grid.
// Complexity: O(S·R·log(S·R)), S = W·H·2, R = 3.
func BenchmarkSearch_Crucible(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Search(g, crucible.WithRunBounds(1, 3))
	}
}

// BenchmarkSearch_UltraCrucible measures the 4..10 variant on a 141×141 grid.
func BenchmarkSearch_UltraCrucible(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Search(g, crucible.WithRunBounds(4, 10))
	}
}

// BenchmarkSearch_WithPath adds predecessor tracking and reconstruction.
func BenchmarkSearch_WithPath(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Search(g, crucible.WithRunBounds(4, 10), crucible.WithReturnPath())
	}
}
