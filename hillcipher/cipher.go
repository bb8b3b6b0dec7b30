package hillcipher

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/katalvlaran/hillcrypt/modular"
)

// Operation name constants for unified error wrapping.
const (
	opValidKey   = "ValidKey"
	opEncode     = "Encode"
	opDecode     = "Decode"
	opInverseKey = "InverseKey"
	opEncrypt    = "Encrypt"
	opInspect    = "Inspect"
)

// validateKey enforces the structural preconditions shared by every
// cipher operation: valid options, non-nil square key.
func validateKey(key *grid.Grid, opts Options, op string) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if key == nil {
		return fmt.Errorf("%s: %w", op, grid.ErrNilGrid)
	}
	if !key.IsSquare() {
		return fmt.Errorf("%s: %dx%d: %w", op, key.Rows(), key.Cols(), ErrKeyDimension)
	}

	return nil
}

// ValidKey reports whether key has a multiplicative inverse mod
// opts.Modulus: true iff gcd(det(key) mod m, m) == 1.
//
// This is the single governing invertibility predicate of the cipher,
// and it is NOT the same as real-number invertibility:
//   - det == 0 implies det ≡ 0 (mod m), so a singular key is invalid for
//     every modulus;
//   - det != 0 can still be invalid when det shares a factor with m
//     (det = -2 ≡ 24 mod 26, gcd 2 — rejected).
//
// Errors are structural only (options, nil, non-square); an invalid key
// is a normal false, not an error.
func ValidKey(key *grid.Grid, opts Options) (bool, error) {
	if err := validateKey(key, opts, opValidKey); err != nil {
		return false, err
	}
	det, err := grid.Determinant(key)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opValidKey, err)
	}

	return modular.GCD(modular.Norm(det, opts.Modulus), opts.Modulus) == 1, nil
}

// Encode encrypts msg with key under opts and returns the ciphertext as
// a flat code sequence (block-major order).
//
// Blueprint:
//
//	Stage 1 (Validate): options and key shape.
//	Stage 2 (Map): symbols → codes; ErrInvalidSymbol on anything outside
//	        the alphabet (after optional uppercase normalization).
//	Stage 3 (Pad): the final block is filled with opts.PadSymbol. The
//	        empty message encodes to an empty sequence.
//	Stage 4 (Transform): per block vector v, compute (K·v) mod m.
//
// Encode never requires the key to be invertible — encrypting with a bad
// key is exactly the demonstration: the information loss only shows up
// at decryption time.
//
// Complexity: O(len(msg)·n) for an n×n key.
func Encode(msg string, key *grid.Grid, opts Options) ([]int64, error) {
	if err := validateKey(key, opts, opEncode); err != nil {
		return nil, err
	}

	codes, err := codesOf(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}
	n := key.Rows()
	if codes, err = pad(codes, n, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", opEncode, err)
	}

	cipher := make([]int64, 0, len(codes))
	var block []int64
	for start := 0; start < len(codes); start += n {
		block, err = key.MulVec(codes[start : start+n])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opEncode, err)
		}
		for _, v := range block {
			cipher = append(cipher, modular.Norm(v, opts.Modulus))
		}
	}

	return cipher, nil
}

// Decode decrypts a flat ciphertext code sequence with key under opts.
//
// The precondition is ValidKey: when gcd(det mod m, m) != 1 the modular
// inverse does not exist and Decode fails with ErrNotInvertible. That
// failure is the central pedagogical result of the package, reported as
// an explicit typed error — never a zeroed or garbage plaintext.
//
// Errors:
//   - ErrNotInvertible — key fails the mod-m invertibility predicate.
//   - ErrBlockLength   — len(codes) is not a multiple of the key size.
//   - ErrCodeRange     — a code lies outside [0, m).
//
// Complexity: O(len(codes)·n) after the O(n⁴) inverse (adjugate route).
func Decode(codes []int64, key *grid.Grid, opts Options) ([]int64, error) {
	if err := validateKey(key, opts, opDecode); err != nil {
		return nil, err
	}
	n := key.Rows()
	if len(codes)%n != 0 {
		return nil, fmt.Errorf("%s: %d codes, block size %d: %w", opDecode, len(codes), n, ErrBlockLength)
	}
	for i, c := range codes {
		if c < 0 || c >= opts.Modulus {
			return nil, fmt.Errorf("%s: position %d: code %d: %w", opDecode, i, c, ErrCodeRange)
		}
	}

	inv, err := InverseKey(key, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	plain := make([]int64, 0, len(codes))
	var block []int64
	for start := 0; start < len(codes); start += n {
		block, err = inv.MulVec(codes[start : start+n])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDecode, err)
		}
		for _, v := range block {
			plain = append(plain, modular.Norm(v, opts.Modulus))
		}
	}

	return plain, nil
}

// InverseKey computes K⁻¹ mod m via the adjugate route, entirely in
// exact integer arithmetic:
//
//	K⁻¹ ≡ (det K)⁻¹ · adj(K)  (mod m)
//
// Errors:
//   - ErrNotInvertible — gcd(det mod m, m) != 1 (includes det == 0). The
//     scalar modular.ErrNoInverse is translated here so callers see one
//     cipher-level sentinel.
//
// Complexity: O(n⁴) from the adjugate's n² cofactor determinants.
func InverseKey(key *grid.Grid, opts Options) (*grid.Grid, error) {
	if err := validateKey(key, opts, opInverseKey); err != nil {
		return nil, err
	}

	det, err := grid.Determinant(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseKey, err)
	}
	detInv, err := modular.Inverse(det, opts.Modulus)
	if err != nil {
		if errors.Is(err, modular.ErrNoInverse) {
			detMod := modular.Norm(det, opts.Modulus)

			return nil, fmt.Errorf("%s: det %d ≡ %d (mod %d), gcd %d: %w",
				opInverseKey, det, detMod, opts.Modulus,
				modular.GCD(detMod, opts.Modulus), ErrNotInvertible)
		}

		return nil, fmt.Errorf("%s: %w", opInverseKey, err)
	}

	adj, err := grid.Adjugate(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseKey, err)
	}
	// Reduce before scaling so entries stay far from int64 limits.
	adjMod, err := adj.Mod(opts.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseKey, err)
	}
	inv, err := adjMod.Scale(detInv).Mod(opts.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverseKey, err)
	}

	return inv, nil
}
