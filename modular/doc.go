// Package modular implements scalar arithmetic in the ring Z/mZ:
// canonical normalization, gcd, and the extended-Euclid multiplicative
// inverse.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hillcrypt/modular"
//
//	inv, err := modular.Inverse(9, 26) // 9·3 ≡ 27 ≡ 1 (mod 26)
//	if err != nil {
//	  // errors.Is(err, modular.ErrNoInverse): gcd(a, m) != 1
//	}
//
// All values are canonical representatives in [0, m): Norm maps any
// integer (negatives included) into that range, and every routine
// normalizes its inputs first. Inverse exists iff gcd(a, m) == 1 — the
// single fact the Hill-cipher invertibility predicate rests on.
package modular
