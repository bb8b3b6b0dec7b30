// SPDX-License-Identifier: MIT

package grid

const opDeterminant = "Determinant"

// Determinant computes the exact integer determinant of a square Grid.
//
// Blueprint:
//
//	Stage 1 (Validate): g non-nil and square.
//	Stage 2 (Closed form): n ≤ 3 uses the direct expansion — for 3×3 the
//	        classic six-term rule — with no allocation.
//	Stage 3 (Bareiss): n ≥ 4 runs fraction-free Bareiss elimination on a
//	        cloned backing slice. Every division in Bareiss is exact by
//	        construction, so the result stays in the integers.
//
// Zero pivots during Bareiss are handled by swapping in a nonzero pivot
// row below (flipping the sign); if the whole sub-column is zero the
// determinant is 0 and the routine returns early.
//
// Exactness is a hard contract: the cipher layer reduces this value mod m
// and feeds it to the extended Euclid inverse, so a rounded float64
// determinant would corrupt the invertibility verdict.
//
// Complexity: O(1) for n ≤ 3, O(n³) otherwise. Space O(1) / O(n²).
func Determinant(g *Grid) (int64, error) {
	if err := validateSquare(g, opDeterminant); err != nil {
		return 0, err
	}

	n := g.rows
	d := g.data
	switch n {
	case 1:
		return d[0], nil
	case 2:
		return d[0]*d[3] - d[1]*d[2], nil
	case 3:
		// Six-term expansion: aei + bfg + cdh - ceg - bdi - afh.
		return d[0]*d[4]*d[8] + d[1]*d[5]*d[6] + d[2]*d[3]*d[7] -
			d[2]*d[4]*d[6] - d[1]*d[3]*d[8] - d[0]*d[5]*d[7], nil
	}

	return bareiss(g.Clone())
}

// bareiss runs fraction-free Bareiss elimination in place on w.
// w is a scratch clone; the caller's Grid is never mutated.
func bareiss(w *Grid) (int64, error) {
	n := w.rows
	d := w.data
	sign := int64(1)
	prev := int64(1) // previous pivot, divides exactly at every step

	var i, j, k, r int
	for k = 0; k < n-1; k++ {
		// Pivot selection: first nonzero entry in the remaining sub-column.
		// Row swaps flip the determinant's sign.
		if d[k*n+k] == 0 {
			r = -1
			for i = k + 1; i < n; i++ {
				if d[i*n+k] != 0 {
					r = i

					break
				}
			}
			if r < 0 {
				return 0, nil // whole sub-column zero → singular
			}
			for j = 0; j < n; j++ {
				d[k*n+j], d[r*n+j] = d[r*n+j], d[k*n+j]
			}
			sign = -sign
		}

		pivot := d[k*n+k]
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				// The division by prev is exact (Bareiss identity).
				d[i*n+j] = (d[i*n+j]*pivot - d[i*n+k]*d[k*n+j]) / prev
			}
			d[i*n+k] = 0
		}
		prev = pivot
	}

	return sign * d[(n-1)*n+(n-1)], nil
}
