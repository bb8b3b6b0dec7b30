package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// ErrBadKeySpec is returned when the --key flag cannot be parsed into a
// square integer matrix.
var ErrBadKeySpec = errors.New("cli: invalid key specification")

// ParseKey resolves a key specification string into a matrix.
//
// Accepted forms:
//   - "good" / "bad"              — the named demonstration keys.
//   - "a,b;c,d" row syntax        — semicolon-separated rows of
//     comma-separated integers, e.g. "2,1,1;1,2,0;0,1,2".
//
// The matrix must be square; entries must parse as int64.
func ParseKey(spec string) (*grid.Grid, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "good":
		return hillcipher.GoodKey(), nil
	case "bad":
		return hillcipher.BadKey(), nil
	}

	rowSpecs := strings.Split(spec, ";")
	rows := make([][]int64, 0, len(rowSpecs))
	for i, rowSpec := range rowSpecs {
		cells := strings.Split(rowSpec, ",")
		row := make([]int64, 0, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, entry %d (%q): %w", i+1, j+1, strings.TrimSpace(cell), ErrBadKeySpec)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", spec, err, ErrBadKeySpec)
	}
	if !g.IsSquare() {
		return nil, fmt.Errorf("%q: %dx%d is not square: %w", spec, g.Rows(), g.Cols(), ErrBadKeySpec)
	}

	return g, nil
}
