// SPDX-License-Identifier: MIT
// Package grid: canonical validators shared by the algebra routines.
// Every exported routine validates through these helpers so the sentinel
// surface stays uniform (nil → ErrNilGrid, shape → ErrNonSquare).

package grid

import "fmt"

// validateNotNil rejects a nil *Grid with ErrNilGrid.
func validateNotNil(g *Grid, op string) error {
	if g == nil || g.data == nil {
		return fmt.Errorf("%s: %w", op, ErrNilGrid)
	}

	return nil
}

// validateSquare rejects nil and non-square Grids.
// Order matters: nil beats shape, matching the documented error priority.
func validateSquare(g *Grid, op string) error {
	if err := validateNotNil(g, op); err != nil {
		return err
	}
	if g.rows != g.cols {
		return fmt.Errorf("%s: %dx%d: %w", op, g.rows, g.cols, ErrNonSquare)
	}

	return nil
}
