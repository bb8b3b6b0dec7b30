package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// NewEncryptCommand creates the encrypt command: one full demonstration
// round — encrypt, then attempt to decrypt with the same key.
func NewEncryptCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message and attempt to decrypt it with the same key",
		Long: `Encrypt a message with the key matrix, then try to decrypt the result.

With a valid key the original (padded) message comes back. With an
invalid key the ciphertext still exists — but the decryption step fails,
and the reason is printed verbatim. That failure is the whole point.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncrypt(rootOpts, args[0], cmd)
		},
	}
}

func runEncrypt(rootOpts *RootOptions, message string, cmd *cobra.Command) error {
	opts, err := rootOpts.engineOptions()
	if err != nil {
		return err
	}
	key, err := rootOpts.keyMatrix()
	if err != nil {
		return err
	}

	res, err := hillcipher.Encrypt(message, key, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "plaintext:    %q\n", res.Plain)
	fmt.Fprintf(out, "plain codes:  %v\n", res.PlainCodes)
	fmt.Fprintf(out, "cipher codes: %v\n", res.Cipher)
	fmt.Fprintf(out, "ciphertext:   %q\n", res.CipherText)
	if res.DecryptErr != nil {
		fmt.Fprintf(out, "decrypted:    DECRYPTION IMPOSSIBLE\n")
		fmt.Fprintf(out, "reason:       %v\n", res.DecryptErr)

		return nil
	}
	fmt.Fprintf(out, "decrypted:    %q\n", res.Decrypted)

	return nil
}
