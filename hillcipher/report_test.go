package hillcipher_test

import (
	"testing"

	"github.com/katalvlaran/hillcrypt/hillcipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInspect_GcdTrappedKey is the subtle spec scenario: [[1,2],[3,4]]
// has det -2 — invertible over the rationals, full rank — yet invalid
// mod 26 because gcd(24, 26) = 2.
func TestInspect_GcdTrappedKey(t *testing.T) {
	rep, err := hillcipher.Inspect(key(t, [][]int64{{1, 2}, {3, 4}}), hillcipher.ClassicOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(-2), rep.Determinant, "exact determinant")
	assert.Equal(t, int64(24), rep.DetMod, "-2 ≡ 24 (mod 26)")
	assert.Equal(t, int64(2), rep.GCD, "shared factor with 26")
	assert.Equal(t, 2, rep.Rank, "full rank over the rationals")
	assert.Equal(t, 0, rep.Nullity)
	assert.False(t, rep.Invertible, "non-invertible mod 26 despite nonzero determinant")
	assert.Contains(t, rep.Rationale, "invertible over the rationals", "rationale must keep the distinction")
	assert.Contains(t, rep.Rationale, "shares factor 2", "rationale names the shared factor")
}

// TestInspect_SingularKey checks the singular demo scenario: det 0,
// rank 1, nullity 1, invalid — with a rationale about block collisions.
func TestInspect_SingularKey(t *testing.T) {
	rep, err := hillcipher.Inspect(key(t, [][]int64{{1, 2}, {2, 4}}), hillcipher.ClassicOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(0), rep.Determinant)
	assert.Equal(t, 1, rep.Rank)
	assert.Equal(t, 1, rep.Nullity)
	assert.False(t, rep.Invertible)
	assert.Contains(t, rep.Rationale, "singular", "verdict names singularity")
	assert.Contains(t, rep.Rationale, "same ciphertext block", "verdict explains the collision")
	assert.Contains(t, rep.Rationale, "any modulus", "singular keys fail universally")
}

// TestInspect_ValidKey checks the happy verdict on the valid scenario.
func TestInspect_ValidKey(t *testing.T) {
	rep, err := hillcipher.Inspect(key(t, [][]int64{{3, 3}, {2, 5}}), hillcipher.ClassicOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(9), rep.Determinant)
	assert.Equal(t, int64(9), rep.DetMod)
	assert.Equal(t, int64(1), rep.GCD)
	assert.True(t, rep.Invertible)
	assert.Contains(t, rep.Rationale, "coprime", "verdict names coprimality")
}

// TestInspect_DemoKeys pins the two 3×3 classroom keys under the default
// 27-symbol configuration.
func TestInspect_DemoKeys(t *testing.T) {
	opts := hillcipher.DefaultOptions()

	good, err := hillcipher.Inspect(hillcipher.GoodKey(), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(7), good.Determinant)
	assert.Equal(t, 3, good.Rank)
	assert.Equal(t, 0, good.Nullity)
	assert.True(t, good.Invertible, "gcd(7, 27) = 1")

	bad, err := hillcipher.Inspect(hillcipher.BadKey(), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bad.Determinant)
	assert.Equal(t, 2, bad.Rank)
	assert.Equal(t, 1, bad.Nullity)
	assert.False(t, bad.Invertible)
}

// TestInspect_RankNullityInvariant re-checks Rank + Nullity == Size at
// the report level across every scenario key.
func TestInspect_RankNullityInvariant(t *testing.T) {
	opts := hillcipher.ClassicOptions()
	for _, rows := range [][][]int64{
		{{1, 2}, {3, 4}},
		{{3, 3}, {2, 5}},
		{{1, 2}, {2, 4}},
		{{2, 1, 1}, {1, 2, 0}, {0, 1, 2}},
		{{1, 2, 3}, {2, 4, 6}, {0, 1, 2}},
	} {
		rep, err := hillcipher.Inspect(key(t, rows), opts)
		require.NoError(t, err)
		assert.Equal(t, rep.Size, rep.Rank+rep.Nullity, "rank + nullity must equal n")
	}
}
