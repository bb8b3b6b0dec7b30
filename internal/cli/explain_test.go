package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestExplain_Golden pins the lesson text against a golden file so
// wording changes are reviewed deliberately (update with -update).
func TestExplain_Golden(t *testing.T) {
	out, err := execute(t, "explain")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "explain", []byte(out))
}
