package hillcipher

import "github.com/katalvlaran/hillcrypt/grid"

// Demonstration keys from the classroom scenario. GoodKey is invertible
// mod 26 and mod 27 alike (det 7); BadKey has a second row that doubles
// the first, so det 0, rank 2, nullity 1 — unusable for every modulus.

// GoodKey returns the invertible 3×3 demonstration key.
func GoodKey() *grid.Grid {
	g, _ := grid.FromRows([][]int64{
		{2, 1, 1},
		{1, 2, 0},
		{0, 1, 2},
	})

	return g
}

// BadKey returns the singular 3×3 demonstration key.
func BadKey() *grid.Grid {
	g, _ := grid.FromRows([][]int64{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 2},
	})

	return g
}
