// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. All routines return these sentinels and tests check them via
// errors.Is. No routine panics on user-triggered error conditions.

package grid

import "errors"

// Every message is prefixed with "grid: ..." for consistency and to allow
// easy grepping across logs. When context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// via errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when row data is ragged. Construction validates before allocation.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where len(v) != Cols, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Determinant, Rank-derived Nullity, Adjugate).
	ErrNonSquare = errors.New("grid: matrix is not square")

	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("grid: nil grid")
)
