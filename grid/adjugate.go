// SPDX-License-Identifier: MIT

package grid

import "fmt"

const (
	opMinor    = "Minor"
	opCofactor = "Cofactor"
	opAdjugate = "Adjugate"
)

// Minor returns the (n-1)×(n-1) submatrix of g with row i and column j
// removed. The classic ingredient of cofactor expansion.
// Returns ErrNonSquare for non-square input, ErrOutOfRange for bad
// indices, ErrBadShape for a 1×1 input (its minor would be empty).
// Complexity: O(n²).
func Minor(g *Grid, i, j int) (*Grid, error) {
	if err := validateSquare(g, opMinor); err != nil {
		return nil, err
	}
	if g.rows == 1 {
		return nil, fmt.Errorf("%s: 1x1 has no minor: %w", opMinor, ErrBadShape)
	}
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinor, i, j, ErrOutOfRange)
	}

	n := g.rows
	m := &Grid{rows: n - 1, cols: n - 1, data: make([]int64, 0, (n-1)*(n-1))}
	var r, c int
	for r = 0; r < n; r++ {
		if r == i {
			continue
		}
		for c = 0; c < n; c++ {
			if c == j {
				continue
			}
			m.data = append(m.data, g.data[r*n+c])
		}
	}

	return m, nil
}

// Cofactor returns (-1)^(i+j) times the determinant of the (i,j) minor.
// Exact integer arithmetic throughout.
// Complexity: dominated by Determinant of the minor.
func Cofactor(g *Grid, i, j int) (int64, error) {
	m, err := Minor(g, i, j)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCofactor, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCofactor, err)
	}
	if (i+j)%2 != 0 {
		det = -det
	}

	return det, nil
}

// Adjugate returns the adjugate (classical adjoint) of g: the transpose
// of its cofactor matrix. The identity g · adj(g) == det(g) · I makes the
// adjugate the exact-integer route to the modular inverse: the cipher
// layer multiplies it by the modular inverse of the determinant, all
// arithmetic mod m.
//
// The 1×1 adjugate is [[1]] by convention (so the identity above holds).
//
// Complexity: O(n²) determinants of size n-1; fine for cipher-sized keys.
func Adjugate(g *Grid) (*Grid, error) {
	if err := validateSquare(g, opAdjugate); err != nil {
		return nil, err
	}

	n := g.rows
	adj := &Grid{rows: n, cols: n, data: make([]int64, n*n)}
	if n == 1 {
		adj.data[0] = 1

		return adj, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof, err := Cofactor(g, i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opAdjugate, err)
			}
			// Transposed placement: adj[j][i] = cof(i, j).
			adj.data[j*n+i] = cof
		}
	}

	return adj, nil
}
