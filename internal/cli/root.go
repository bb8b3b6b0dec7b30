package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// RootOptions holds the global flags shared by all subcommands.
type RootOptions struct {
	Key        string // named key ("good" | "bad") or row syntax "2,1,1;1,2,0;0,1,2"
	Preset     string // engine preset: "default" (27 symbols) | "classic" (A-Z, mod 26)
	ConfigPath string // optional YAML file overriding the preset
}

// ValidPresets defines the allowed --preset values.
var ValidPresets = []string{"default", "classic"}

// NewRootCommand creates the root command for the hillcrypt CLI.
//
// The CLI is a thin presentation layer: every subcommand parses flags,
// calls the pure hillcipher engine, and renders the returned values.
// It holds no cryptographic state of its own.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hillcrypt",
		Short: "hillcrypt - why singular matrices fail as cipher keys",
		Long: `An educational Hill-cipher workbench.

Inspect a key matrix (determinant, rank, nullity, mod-m invertibility),
encrypt a message with it, and watch decryption succeed or provably fail.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidPreset(opts.Preset) {
				return fmt.Errorf("invalid preset %q: must be one of %v", opts.Preset, ValidPresets)
			}

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.Key, "key", "k", "good", `key matrix: "good", "bad", or rows like "2,1,1;1,2,0;0,1,2"`)
	cmd.PersistentFlags().StringVar(&opts.Preset, "preset", "default", "alphabet preset (default|classic)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config overriding the preset (modulus, alphabet, pad, normalize)")

	// Add subcommands
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewEncryptCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))

	return cmd
}

// isValidPreset checks the --preset value against ValidPresets.
func isValidPreset(preset string) bool {
	for _, p := range ValidPresets {
		if p == preset {
			return true
		}
	}

	return false
}

// engineOptions resolves the effective hillcipher.Options: the YAML
// config wins over the preset when --config is given.
func (o *RootOptions) engineOptions() (hillcipher.Options, error) {
	if o.ConfigPath != "" {
		return LoadConfig(o.ConfigPath)
	}
	if o.Preset == "classic" {
		return hillcipher.ClassicOptions(), nil
	}

	return hillcipher.DefaultOptions(), nil
}

// keyMatrix resolves the --key flag into a Grid.
func (o *RootOptions) keyMatrix() (*grid.Grid, error) {
	return ParseKey(o.Key)
}
