// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/hillcrypt/grid"
)

// benchGrid builds a dense n×n Grid with deterministic entries.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = int64((i*7+j*3)%11 - 5)
		}
	}
	g, err := grid.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows: %v", err)
	}

	return g
}

// BenchmarkDeterminant3 measures the closed-form 3×3 path.
func BenchmarkDeterminant3(b *testing.B) {
	g := benchGrid(b, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Determinant(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDeterminant8 measures the Bareiss path on an 8×8.
func BenchmarkDeterminant8(b *testing.B) {
	g := benchGrid(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Determinant(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRank8 measures pivoted elimination on an 8×8.
func BenchmarkRank8(b *testing.B) {
	g := benchGrid(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.Rank(g); err != nil {
			b.Fatal(err)
		}
	}
}
