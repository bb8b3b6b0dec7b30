package modular_test

import (
	"testing"

	"github.com/katalvlaran/hillcrypt/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNorm verifies canonical representatives, negatives included.
func TestNorm(t *testing.T) {
	assert.Equal(t, int64(25), modular.Norm(-1, 26), "negative wraps upward")
	assert.Equal(t, int64(0), modular.Norm(52, 26), "exact multiple")
	assert.Equal(t, int64(24), modular.Norm(-2, 26), "det=-2 of the classic 2x2")
	assert.Equal(t, int64(7), modular.Norm(7, 26), "already canonical")
}

// TestGCD covers signs, zero and coprime pairs.
func TestGCD(t *testing.T) {
	assert.Equal(t, int64(2), modular.GCD(24, 26), "shared factor 2")
	assert.Equal(t, int64(1), modular.GCD(9, 26), "coprime")
	assert.Equal(t, int64(13), modular.GCD(-13, 26), "sign-insensitive")
	assert.Equal(t, int64(5), modular.GCD(0, 5), "gcd(0, b) == |b|")
	assert.Equal(t, int64(0), modular.GCD(0, 0), "gcd(0, 0) == 0 by convention")
}

// TestInverse_Known checks hand-verifiable inverses and the defining
// property a·x ≡ 1 (mod m) across all invertible residues mod 26.
func TestInverse_Known(t *testing.T) {
	inv, err := modular.Inverse(9, 26)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inv, "9·3 = 27 ≡ 1 (mod 26)")

	inv, err = modular.Inverse(7, 27)
	require.NoError(t, err)
	assert.Equal(t, int64(4), inv, "7·4 = 28 ≡ 1 (mod 27)")

	// Negative input normalizes first: -17 ≡ 9 (mod 26).
	inv, err = modular.Inverse(-17, 26)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inv, "normalization before inversion")

	for a := int64(1); a < 26; a++ {
		if modular.GCD(a, 26) != 1 {
			continue
		}
		x, invErr := modular.Inverse(a, 26)
		require.NoError(t, invErr, "a=%d", a)
		assert.Equal(t, int64(1), modular.Norm(a*x, 26), "a·a⁻¹ must be 1 for a=%d", a)
	}
}

// TestInverse_Fails verifies ErrNoInverse for every non-coprime residue
// and ErrBadModulus for degenerate moduli.
func TestInverse_Fails(t *testing.T) {
	for _, a := range []int64{0, 2, 13, 24, 26} {
		_, err := modular.Inverse(a, 26)
		assert.ErrorIs(t, err, modular.ErrNoInverse, "a=%d shares a factor with 26", a)
	}

	_, err := modular.Inverse(3, 1)
	assert.ErrorIs(t, err, modular.ErrBadModulus, "m=1")
	_, err = modular.Inverse(3, 0)
	assert.ErrorIs(t, err, modular.ErrBadModulus, "m=0")
}
