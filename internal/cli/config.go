package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// FileConfig is the YAML shape of an engine configuration file. Absent
// fields keep the default-preset value, so a file may override just the
// padding symbol, or just the alphabet/modulus pair.
//
// Example:
//
//	modulus: 26
//	alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
//	pad: "X"
//	normalize: true
type FileConfig struct {
	Modulus   *int64  `yaml:"modulus"`
	Alphabet  *string `yaml:"alphabet"`
	Pad       *string `yaml:"pad"`
	Normalize *bool   `yaml:"normalize"`
}

// LoadConfig reads a YAML engine configuration, layers it over
// DefaultOptions and validates the result. Validation failures surface
// the hillcipher/modular sentinels unchanged.
func LoadConfig(path string) (hillcipher.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return hillcipher.Options{}, fmt.Errorf("config %s: %w", path, err)
	}

	var fc FileConfig
	if err = yaml.Unmarshal(raw, &fc); err != nil {
		return hillcipher.Options{}, fmt.Errorf("config %s: %w", path, err)
	}

	opts := hillcipher.DefaultOptions()
	if fc.Modulus != nil {
		opts.Modulus = *fc.Modulus
	}
	if fc.Alphabet != nil {
		opts.Alphabet = *fc.Alphabet
	}
	if fc.Pad != nil {
		runes := []rune(*fc.Pad)
		if len(runes) != 1 {
			return hillcipher.Options{}, fmt.Errorf("config %s: pad must be a single symbol, got %q: %w", path, *fc.Pad, hillcipher.ErrBadAlphabet)
		}
		opts.PadSymbol = runes[0]
	}
	if fc.Normalize != nil {
		opts.Normalize = *fc.Normalize
	}

	if err = opts.Validate(); err != nil {
		return hillcipher.Options{}, fmt.Errorf("config %s: %w", path, err)
	}

	return opts, nil
}
