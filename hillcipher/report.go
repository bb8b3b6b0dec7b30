package hillcipher

import (
	"fmt"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/katalvlaran/hillcrypt/modular"
)

// KeyReport collects every algebraic property the demonstration displays
// for a key matrix, plus a human-readable rationale. Side-effect-free;
// produced by Inspect and rendered verbatim by front-ends.
//
// Rank and Nullity are properties of the key over the rationals and are
// reported as such — they are computed BEFORE any reduction mod m. The
// cipher's validity is the separate mod-m predicate captured by DetMod,
// GCD and Invertible. Conflating the two is the classic mistake this
// report exists to untangle.
type KeyReport struct {
	Size        int    // key dimension n
	Determinant int64  // exact integer determinant
	DetMod      int64  // determinant reduced into [0, m)
	GCD         int64  // gcd(DetMod, m)
	Rank        int    // rank over the rationals
	Nullity     int    // n - Rank
	Invertible  bool   // gcd(DetMod, m) == 1
	Rationale   string // human-readable verdict explanation
}

// Inspect computes the full diagnostic report for key under opts.
//
// The report honors two invariants for every key:
//   - Rank + Nullity == Size.
//   - Determinant == 0 implies Invertible == false for every modulus.
//
// Errors are structural only (options, nil, non-square key); a bad key
// is a normal report with Invertible == false.
func Inspect(key *grid.Grid, opts Options) (KeyReport, error) {
	if err := validateKey(key, opts, opInspect); err != nil {
		return KeyReport{}, err
	}

	det, err := grid.Determinant(key)
	if err != nil {
		return KeyReport{}, fmt.Errorf("%s: %w", opInspect, err)
	}
	rank, err := grid.Rank(key)
	if err != nil {
		return KeyReport{}, fmt.Errorf("%s: %w", opInspect, err)
	}

	rep := KeyReport{
		Size:        key.Rows(),
		Determinant: det,
		DetMod:      modular.Norm(det, opts.Modulus),
		Rank:        rank,
		Nullity:     key.Rows() - rank,
	}
	rep.GCD = modular.GCD(rep.DetMod, opts.Modulus)
	rep.Invertible = rep.GCD == 1
	rep.Rationale = rationale(rep, opts.Modulus)

	return rep, nil
}

// rationale renders the verdict explanation for a computed report.
// Three regimes: singular, non-singular but not coprime, valid.
func rationale(rep KeyReport, m int64) string {
	switch {
	case rep.Determinant == 0:
		return fmt.Sprintf(
			"determinant is 0: the key is singular, rank %d of %d leaves nullity %d, "+
				"so the key maps multiple distinct plaintext blocks to the same ciphertext block; "+
				"decryption cannot recover the original message uniquely under any modulus",
			rep.Rank, rep.Size, rep.Nullity)
	case !rep.Invertible:
		return fmt.Sprintf(
			"determinant %d is nonzero, so the key is invertible over the rationals, "+
				"but %d ≡ %d (mod %d) shares factor %d with the modulus; "+
				"the determinant has no inverse mod %d and decryption is impossible",
			rep.Determinant, rep.Determinant, rep.DetMod, m, rep.GCD, m)
	default:
		return fmt.Sprintf(
			"determinant %d ≡ %d (mod %d) is coprime with the modulus, "+
				"so the modular inverse of the key exists and decryption recovers every block uniquely",
			rep.Determinant, rep.DetMod, m)
	}
}
