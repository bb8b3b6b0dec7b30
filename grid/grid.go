// SPDX-License-Identifier: MIT
// Package grid: the Grid type — construction, indexing, cloning, products.
// All mutating access is index-checked; arithmetic helpers allocate fresh
// results and never mutate their operands.

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is a dense, row-major matrix of int64 entries.
//
// The zero value is not usable; construct via New or FromRows.
// Entry (i, j) lives at data[i*cols+j]. All arithmetic on Grid values is
// exact integer arithmetic.
//
// Complexity notes: all accessors are O(1); Clone is O(r·c).
type Grid struct {
	rows int     // number of rows, always > 0 after construction
	cols int     // number of columns, always > 0 after construction
	data []int64 // row-major backing slice, len == rows*cols
}

// New allocates a zero-filled rows×cols Grid.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(r·c).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid{rows: rows, cols: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows builds a Grid from a slice of equal-length rows.
// The input is copied; later mutation of rows does not affect the Grid.
// Returns ErrBadShape on an empty input or ragged rows.
// Complexity: O(r·c).
func FromRows(rows [][]int64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	nCols := len(rows[0])
	g := &Grid{rows: len(rows), cols: nCols, data: make([]int64, 0, len(rows)*nCols)}
	for i, row := range rows {
		if len(row) != nCols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), nCols, ErrBadShape)
		}
		g.data = append(g.data, row...)
	}

	return g, nil
}

// Rows returns the number of rows. O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. O(1).
func (g *Grid) Cols() int { return g.cols }

// IsSquare reports whether the Grid is square. O(1).
func (g *Grid) IsSquare() bool { return g.rows == g.cols }

// At retrieves the entry at (i, j).
// Returns ErrOutOfRange when i or j is outside the valid bounds.
// Complexity: O(1).
func (g *Grid) At(i, j int) (int64, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return g.data[i*g.cols+j], nil
}

// Set assigns v at (i, j).
// Returns ErrOutOfRange when i or j is outside the valid bounds.
// Complexity: O(1).
func (g *Grid) Set(i, j int, v int64) error {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	g.data[i*g.cols+j] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(r·c).
func (g *Grid) Clone() *Grid {
	dup := &Grid{rows: g.rows, cols: g.cols, data: make([]int64, len(g.data))}
	copy(dup.data, g.data)

	return dup
}

// Equal reports whether g and h have identical shape and entries.
// A nil argument is never equal to a constructed Grid.
// Complexity: O(r·c).
func (g *Grid) Equal(h *Grid) bool {
	if h == nil || g.rows != h.rows || g.cols != h.cols {
		return false
	}
	for idx := range g.data {
		if g.data[idx] != h.data[idx] {
			return false
		}
	}

	return true
}

// MulVec computes the matrix-vector product g·v as a fresh slice.
// Returns ErrDimensionMismatch when len(v) != Cols.
// Complexity: O(r·c).
func (g *Grid) MulVec(v []int64) ([]int64, error) {
	if len(v) != g.cols {
		return nil, fmt.Errorf("MulVec: vector length %d, want %d: %w", len(v), g.cols, ErrDimensionMismatch)
	}
	out := make([]int64, g.rows)
	var i, j int // deterministic i→j order
	for i = 0; i < g.rows; i++ {
		base := i * g.cols
		var sum int64
		for j = 0; j < g.cols; j++ {
			sum += g.data[base+j] * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Mul computes the matrix product g·h into a fresh Grid.
// Returns ErrDimensionMismatch when g.Cols != h.Rows; ErrNilGrid on nil h.
// Complexity: O(r·n·c).
func (g *Grid) Mul(h *Grid) (*Grid, error) {
	if h == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilGrid)
	}
	if g.cols != h.rows {
		return nil, fmt.Errorf("Mul: inner %d vs %d: %w", g.cols, h.rows, ErrDimensionMismatch)
	}
	res := &Grid{rows: g.rows, cols: h.cols, data: make([]int64, g.rows*h.cols)}
	var i, j, k int // fixed i→k→j order, row-major strides
	for i = 0; i < g.rows; i++ {
		for k = 0; k < g.cols; k++ {
			av := g.data[i*g.cols+k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < h.cols; j++ {
				res.data[i*h.cols+j] += av * h.data[k*h.cols+j]
			}
		}
	}

	return res, nil
}

// Mod returns a fresh Grid with every entry reduced to the canonical
// representative in [0, m). Negative entries normalize upward, so the
// result is suitable for modular arithmetic regardless of input sign.
// Returns ErrOutOfRange when m <= 0 (modulus validation proper lives in
// the modular package; this is a guard, not policy).
// Complexity: O(r·c).
func (g *Grid) Mod(m int64) (*Grid, error) {
	if m <= 0 {
		return nil, fmt.Errorf("Mod(%d): %w", m, ErrOutOfRange)
	}
	res := &Grid{rows: g.rows, cols: g.cols, data: make([]int64, len(g.data))}
	for idx, v := range g.data {
		r := v % m
		if r < 0 {
			r += m
		}
		res.data[idx] = r
	}

	return res, nil
}

// Scale returns a fresh Grid with every entry multiplied by s.
// Complexity: O(r·c).
func (g *Grid) Scale(s int64) *Grid {
	res := &Grid{rows: g.rows, cols: g.cols, data: make([]int64, len(g.data))}
	for idx, v := range g.data {
		res.data[idx] = v * s
	}

	return res
}

// Identity returns the n×n identity Grid.
// Returns ErrBadShape when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Grid, error) {
	g, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		g.data[i*n+i] = 1
	}

	return g, nil
}

// String renders the Grid as rows of space-separated entries in brackets,
// one row per line. For display and test diagnostics only; not a parse
// format.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(g.data[i*g.cols+j], 10))
		}
		b.WriteByte(']')
		if i < g.rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
