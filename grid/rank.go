// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

const (
	opRank    = "Rank"
	opNullity = "Nullity"
)

// rankEps is the zero threshold for pivot detection during elimination.
// Entries are exact integers on input, so after partial pivoting anything
// this small in magnitude is elimination residue, not signal.
const rankEps = 1e-9

// Rank computes the rank of g over the rationals.
//
// Blueprint:
//
//	Stage 1 (Validate): g non-nil (rectangular Grids are allowed).
//	Stage 2 (Eliminate): Gaussian elimination on a float64 copy with
//	        partial pivoting — the pivot is the entry of largest absolute
//	        value in the remaining sub-column, which avoids
//	        division-by-near-zero artifacts.
//	Stage 3 (Count): every pivot with |pivot| > rankEps contributes one to
//	        the rank.
//
// Rank is a property of the matrix over the rationals and is reported as
// such; it is deliberately NOT reduced mod anything. The cipher's mod-m
// validity test is a separate predicate — see hillcipher.ValidKey.
//
// Complexity: O(r·c·min(r,c)) time, O(r·c) space.
func Rank(g *Grid) (int, error) {
	if err := validateNotNil(g, opRank); err != nil {
		return 0, err
	}

	rows, cols := g.rows, g.cols
	w := make([]float64, len(g.data))
	for idx, v := range g.data {
		w[idx] = float64(v)
	}

	rank := 0
	var row, col, i, j, best int
	for col = 0; col < cols && rank < rows; col++ {
		// Partial pivoting: largest |entry| in the remaining sub-column.
		best = rank
		for i = rank + 1; i < rows; i++ {
			if math.Abs(w[i*cols+col]) > math.Abs(w[best*cols+col]) {
				best = i
			}
		}
		if math.Abs(w[best*cols+col]) <= rankEps {
			continue // no usable pivot in this column
		}
		if best != rank {
			for j = 0; j < cols; j++ {
				w[rank*cols+j], w[best*cols+j] = w[best*cols+j], w[rank*cols+j]
			}
		}

		pivot := w[rank*cols+col]
		for row = rank + 1; row < rows; row++ {
			factor := w[row*cols+col] / pivot
			if factor == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				w[row*cols+j] -= factor * w[rank*cols+j]
			}
		}
		rank++
	}

	return rank, nil
}

// Nullity computes the dimension of the null space of g, defined as
// Cols - Rank. For the square key matrices of the cipher this is the
// classic n - rank, and Rank + Nullity == n holds for every Grid.
// Complexity: dominated by Rank.
func Nullity(g *Grid) (int, error) {
	r, err := Rank(g)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opNullity, err)
	}

	return g.cols - r, nil
}
