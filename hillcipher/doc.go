// Package hillcipher implements a classical Hill cipher over small integer
// key matrices, built to demonstrate WHY bad keys fail rather than to
// protect anything.
//
// 🚀 What is a Hill cipher?
//
//	Plaintext is chopped into blocks of n symbols, each block becomes an
//	integer vector, and encryption is one matrix-vector product mod m:
//	  C = (K·P) mod m
//	Decryption needs K⁻¹ mod m, which exists iff gcd(det K mod m, m) = 1.
//
// ✨ What this package demonstrates:
//   - A singular key (det = 0) collapses distinct plaintext blocks onto the
//     same ciphertext block — decryption is impossible for EVERY modulus.
//   - A non-singular key can still fail: det = -2 is fine over the
//     rationals, but gcd(24, 26) = 2, so the key has no inverse mod 26.
//   - A valid key round-trips exactly: Decode(Encode(msg)) == padded msg.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hillcrypt/hillcipher"
//
//	opts := hillcipher.DefaultOptions()
//	rep, err := hillcipher.Inspect(hillcipher.GoodKey(), opts)
//	// rep.Determinant, rep.Rank, rep.Nullity, rep.Invertible, rep.Rationale
//
//	res, err := hillcipher.Encrypt("HELLO WORLD", hillcipher.GoodKey(), opts)
//	// res.CipherText, res.Decrypted (or res.DecryptErr for a bad key)
//
// Every function is pure and stateless: configuration travels in an
// explicit Options value, never in package state, so concurrent callers
// need no coordination.
//
// The cipher is pedagogically weak by design (tiny modulus, tiny blocks);
// do not use it to protect data.
package hillcipher
