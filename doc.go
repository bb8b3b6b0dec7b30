// Package hillcrypt is an educational workbench showing why singular
// (and mod-m non-invertible) matrices fail as Hill-cipher keys.
//
// 🚀 What is hillcrypt?
//
//	A small, pure-Go library plus a terminal front-end that takes a key
//	matrix apart and demonstrates the consequences:
//		• Exact algebra: integer determinant, adjugate, rank & nullity
//		• Modular arithmetic: gcd, extended-Euclid inverse in Z/mZ
//		• The cipher: block encode/decode, the invertibility predicate,
//		  and a diagnostic report that explains each verdict in words
//
// ✨ Why does it exist?
//
//   - A singular key (det = 0) destroys information: distinct plaintext
//     blocks collide, for every modulus, forever.
//   - A non-singular key can STILL fail: det = -2 is fine over the
//     rationals but gcd(24, 26) = 2 kills it mod 26.
//   - Seeing both failures side by side — with ranks, nullities and gcds
//     attached — is the lesson.
//
// Everything is organized under three library packages and one binary:
//
//	grid/       — dense integer matrices: determinant, rank, adjugate
//	modular/    — scalar arithmetic in Z/mZ: Norm, GCD, Inverse
//	hillcipher/ — the engine: Encode, Decode, ValidKey, Inspect, Encrypt
//	cmd/hillcrypt — cobra CLI: inspect, encrypt, explain
//
// The engine is stateless and pure: configuration travels in an explicit
// Options value, so it is equally usable from a CLI, a GUI, or a test
// harness — none of which it knows about.
package hillcrypt
