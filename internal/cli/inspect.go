package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// NewInspectCommand creates the inspect command: the "matrix properties"
// panel of the demonstration, rendered as text.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show determinant, rank, nullity and the mod-m invertibility verdict",
		Long: `Inspect the key matrix.

Reports the exact integer determinant, its residue mod m, the gcd with
the modulus, rank and nullity over the rationals, and whether the key
can decrypt — with the reason spelled out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd)
		},
	}
}

func runInspect(rootOpts *RootOptions, cmd *cobra.Command) error {
	opts, err := rootOpts.engineOptions()
	if err != nil {
		return err
	}
	key, err := rootOpts.keyMatrix()
	if err != nil {
		return err
	}

	// All math happens in the engine; this layer only renders.
	rep, err := hillcipher.Inspect(key, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key (%dx%d):\n%s\n\n", key.Rows(), key.Cols(), indent(key.String(), "  "))
	fmt.Fprintf(out, "determinant:     %d\n", rep.Determinant)
	fmt.Fprintf(out, "det mod %-2d:      %d\n", opts.Modulus, rep.DetMod)
	fmt.Fprintf(out, "gcd(det, m):     %d\n", rep.GCD)
	fmt.Fprintf(out, "rank:            %d\n", rep.Rank)
	fmt.Fprintf(out, "nullity:         %d\n", rep.Nullity)
	if rep.Invertible {
		fmt.Fprintf(out, "verdict:         VALID KEY (invertible mod %d)\n", opts.Modulus)
	} else {
		fmt.Fprintf(out, "verdict:         INVALID KEY (not invertible mod %d)\n", opts.Modulus)
	}
	fmt.Fprintf(out, "\n%s\n", rep.Rationale)

	return nil
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}
