// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BadShape verifies that non-positive dimensions are rejected
// with ErrBadShape before any allocation.
func TestNew_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		_, err := grid.New(dims[0], dims[1])
		assert.ErrorIs(t, err, grid.ErrBadShape, "New(%d,%d) must reject", dims[0], dims[1])
	}
}

// TestFromRows_Ragged ensures ragged input yields ErrBadShape.
func TestFromRows_Ragged(t *testing.T) {
	_, err := grid.FromRows([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrBadShape, "ragged rows must reject")

	_, err = grid.FromRows(nil)
	assert.ErrorIs(t, err, grid.ErrBadShape, "empty input must reject")
}

// TestAtSet_Bounds verifies index-checked access: valid round-trip plus
// ErrOutOfRange on every out-of-bounds corner.
func TestAtSet_Bounds(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 7))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v, "Set then At must round-trip")

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = g.At(idx[0], idx[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
		err = g.Set(idx[0], idx[1], 1)
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "Set(%d,%d)", idx[0], idx[1])
	}
}

// TestClone_Independent ensures Clone yields a deep copy: mutating the
// clone never leaks into the original.
func TestClone_Independent(t *testing.T) {
	g, err := grid.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	dup := g.Clone()
	require.NoError(t, dup.Set(0, 0, 99))

	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v, "original must be untouched")
	assert.False(t, g.Equal(dup), "mutated clone must differ")
}

// TestMulVec verifies the matrix-vector product and its dimension guard.
func TestMulVec(t *testing.T) {
	g, err := grid.FromRows([][]int64{{2, 1, 1}, {1, 2, 0}, {0, 1, 2}})
	require.NoError(t, err)

	out, err := g.MulVec([]int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 5, 8}, out, "product mismatch")

	_, err = g.MulVec([]int64{1, 2})
	assert.ErrorIs(t, err, grid.ErrDimensionMismatch, "short vector must reject")
}

// TestMul_AdjugateIdentity checks Mul against the adjugate identity
// A · adj(A) == det(A) · I on an invertible 3×3.
func TestMul_AdjugateIdentity(t *testing.T) {
	g, err := grid.FromRows([][]int64{{2, 1, 1}, {1, 2, 0}, {0, 1, 2}})
	require.NoError(t, err)

	adj, err := grid.Adjugate(g)
	require.NoError(t, err)
	det, err := grid.Determinant(g)
	require.NoError(t, err)

	prod, err := g.Mul(adj)
	require.NoError(t, err)
	ident, err := grid.Identity(3)
	require.NoError(t, err)
	assert.True(t, prod.Equal(ident.Scale(det)), "A·adj(A) must equal det·I")
}

// TestMod_NormalizesNegatives ensures Mod maps every entry into [0, m),
// including negative entries.
func TestMod_NormalizesNegatives(t *testing.T) {
	g, err := grid.FromRows([][]int64{{-1, 27}, {-27, 5}})
	require.NoError(t, err)

	r, err := g.Mod(26)
	require.NoError(t, err)
	want, err := grid.FromRows([][]int64{{25, 1}, {25, 5}})
	require.NoError(t, err)
	assert.True(t, r.Equal(want), "Mod(26) mismatch: got\n%s", r)

	_, err = g.Mod(0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange, "non-positive modulus must reject")
}

// TestString renders a small Grid deterministically.
func TestString(t *testing.T) {
	g, err := grid.FromRows([][]int64{{1, -2}, {30, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1 -2]\n[30 4]", g.String())
}
