package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExplainCommand creates the explain command: the long-form lesson
// text of the demonstration.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "explain",
		Short:         "Print the full lesson: why bad key matrices break the Hill cipher",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), lessonText)

			return nil
		},
	}
}

// lessonText is static by design: it explains the mathematics, not any
// particular key. Per-key diagnosis lives in the inspect command.
const lessonText = `WHY BAD KEY MATRICES BREAK THE HILL CIPHER
==========================================

1. THE CIPHER
   Plaintext is split into blocks of n symbols, each block read as an
   integer vector p. Encryption is one matrix product per block:
       c = (K * p) mod m
   Decryption multiplies by the inverse key:
       p = (K' * c) mod m
   where K' is the inverse of K modulo m. No K', no decryption.

2. SINGULAR KEYS (det K = 0)
   A zero determinant means the rows of K are linearly dependent: the
   key squashes n-dimensional message space into fewer dimensions.
   Whole families of distinct plaintext blocks — anything differing by
   a null-space vector — land on the same ciphertext block. The lost
   dimensions cannot be reconstructed by any method, with any modulus:
   zero stays zero mod everything. Nullity counts exactly how many
   dimensions of the message are destroyed.

3. THE MODULAR TRAP (det K != 0 but gcd(det K mod m, m) != 1)
   Real-number invertibility is not enough. The cipher lives in
   arithmetic mod m, and K' exists there only when the determinant has a
   multiplicative inverse mod m — which requires gcd(det mod m, m) = 1.
   With m = 26 = 2 * 13, any determinant sharing a factor 2 or 13 is
   trapped: the matrix [[1,2],[3,4]] has det -2, perfectly invertible
   over the rationals, yet -2 = 24 (mod 26) and gcd(24, 26) = 2, so
   decryption is impossible mod 26.

4. THE COMPLETE RULE
   A key matrix K works for the Hill cipher mod m if and only if
       gcd(det K mod m, m) = 1.
   This single test subsumes both failure modes: det 0 reduces to 0 mod
   every m (gcd = m, never 1), and a nonzero det fails exactly when it
   shares a factor with m. Both directions are demonstrated by the
   inspect and encrypt commands.
`
