// SPDX-License-Identifier: MIT

// Package grid provides small dense integer matrices with exact arithmetic.
//
// The grid package provides:
//
//   - Grid, a row-major dense matrix of int64 entries with O(1) indexing.
//   - Exact integer Determinant (closed form for n ≤ 3, fraction-free
//     Bareiss elimination beyond) — no floating point, ever.
//   - Rank and Nullity over the rationals via partially pivoted Gaussian
//     elimination.
//   - Minor, Cofactor and Adjugate for the adjugate-based modular inverse
//     used by the cipher layer.
//
// Exactness is the point: downstream modular-inverse logic depends on the
// true integer determinant, so Determinant and Adjugate never round. Rank
// is the one deliberately floating-point routine, because rank is a
// property of the matrix over the rationals and partial pivoting keeps the
// elimination numerically safe.
//
// Grids are best for the tiny key matrices of a classical cipher (3×3 in
// practice); nothing here is tuned for large n.
package grid
