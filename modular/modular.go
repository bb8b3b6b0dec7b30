package modular

import (
	"errors"
	"fmt"
)

var (
	// ErrBadModulus indicates a modulus m < 2; the ring Z/mZ is degenerate
	// or undefined there.
	ErrBadModulus = errors.New("modular: modulus must be >= 2")

	// ErrNoInverse indicates that a has no multiplicative inverse mod m,
	// i.e. gcd(a mod m, m) != 1.
	ErrNoInverse = errors.New("modular: no multiplicative inverse")
)

// Norm returns the canonical representative of a in [0, m).
// Negative a normalizes upward: Norm(-1, 26) == 25.
// m must be positive; Norm panics on m <= 0 only via integer division
// semantics, so callers validate m first (Inverse and the cipher layer do).
func Norm(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// GCD returns the greatest common divisor of a and b, always >= 0.
// GCD(0, 0) == 0 by convention.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Inverse computes a⁻¹ mod m via the extended Euclidean algorithm.
//
// Blueprint:
//
//	Stage 1 (Validate): m >= 2, a normalized into [0, m).
//	Stage 2 (Extend): run extended Euclid on (a, m), tracking only the
//	        Bézout coefficient of a.
//	Stage 3 (Verify): gcd must be 1, else ErrNoInverse; normalize the
//	        coefficient into [0, m).
//
// The returned value x satisfies a·x ≡ 1 (mod m).
//
// Errors:
//   - ErrBadModulus — m < 2.
//   - ErrNoInverse  — gcd(a mod m, m) != 1 (includes a ≡ 0).
//
// Complexity: O(log m).
func Inverse(a, m int64) (int64, error) {
	if m < 2 {
		return 0, fmt.Errorf("Inverse(%d, %d): %w", a, m, ErrBadModulus)
	}
	a = Norm(a, m)

	// Extended Euclid: invariants old_r = old_s·a (mod m), r = s·a (mod m).
	oldR, r := a, m
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("Inverse(%d, %d): gcd=%d: %w", a, m, oldR, ErrNoInverse)
	}

	return Norm(oldS, m), nil
}
