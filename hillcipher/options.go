package hillcipher

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcrypt/modular"
)

// Alphabet and modulus presets.
//
// DefaultAlphabet is the 27-symbol table the desktop demonstration uses:
// space maps to 0 and A..Z to 1..26, so messages with spaces encode
// directly. ClassicAlphabet is the textbook Hill-cipher table (A=0..Z=25,
// modulus 26); spaces are not representable there.
const (
	// DefaultAlphabet — space=0, A=1..Z=26. Pairs with DefaultModulus.
	DefaultAlphabet = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// DefaultModulus — 27, the length of DefaultAlphabet.
	DefaultModulus = 27

	// ClassicAlphabet — A=0..Z=25. Pairs with ClassicModulus.
	ClassicAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// ClassicModulus — 26, the length of ClassicAlphabet.
	ClassicModulus = 26
)

// Options configures one engine call. It is an immutable value passed
// explicitly into every function — the engine holds no process-wide state.
//
// Fields:
//   - Modulus   — ring size for all modular arithmetic; must equal
//     len(Alphabet) so codes and symbols stay in bijection.
//   - Alphabet  — symbol table; the code of a symbol is its index.
//     Symbols must be unique.
//   - PadSymbol — filler appended to the final block when the message
//     length is not a multiple of the key dimension. Must be a member of
//     Alphabet. The padding policy is deliberately configurable.
//   - Normalize — when true (both presets), input is uppercased before
//     alphabet lookup. Symbols still outside the alphabet fail with
//     ErrInvalidSymbol; nothing is stripped silently.
type Options struct {
	Modulus   int64
	Alphabet  string
	PadSymbol rune
	Normalize bool
}

// DefaultOptions returns the 27-symbol space-aware configuration:
// modulus 27, space padding, uppercase normalization.
func DefaultOptions() Options {
	return Options{
		Modulus:   DefaultModulus,
		Alphabet:  DefaultAlphabet,
		PadSymbol: ' ',
		Normalize: true,
	}
}

// ClassicOptions returns the textbook A=0..Z=25 configuration:
// modulus 26, 'A' padding (code 0), uppercase normalization.
func ClassicOptions() Options {
	return Options{
		Modulus:   ClassicModulus,
		Alphabet:  ClassicAlphabet,
		PadSymbol: 'A',
		Normalize: true,
	}
}

// Validate performs fail-fast configuration checks.
//
// Errors:
//   - modular.ErrBadModulus — Modulus < 2.
//   - ErrBadAlphabet        — alphabet shorter than 2 symbols, length not
//     equal to Modulus, duplicate symbols, or PadSymbol not in Alphabet.
func (o Options) Validate() error {
	if o.Modulus < 2 {
		return fmt.Errorf("Options: modulus %d: %w", o.Modulus, modular.ErrBadModulus)
	}
	symbols := []rune(o.Alphabet)
	if len(symbols) < 2 {
		return fmt.Errorf("Options: alphabet %q too short: %w", o.Alphabet, ErrBadAlphabet)
	}
	if int64(len(symbols)) != o.Modulus {
		return fmt.Errorf("Options: alphabet length %d != modulus %d: %w", len(symbols), o.Modulus, ErrBadAlphabet)
	}
	seen := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("Options: duplicate symbol %q: %w", r, ErrBadAlphabet)
		}
		seen[r] = struct{}{}
	}
	if !strings.ContainsRune(o.Alphabet, o.PadSymbol) {
		return fmt.Errorf("Options: pad symbol %q not in alphabet: %w", o.PadSymbol, ErrBadAlphabet)
	}

	return nil
}

// codeOf maps one symbol to its numeric code, or ErrInvalidSymbol.
func (o Options) codeOf(r rune) (int64, error) {
	idx := strings.IndexRune(o.Alphabet, r)
	if idx < 0 {
		return 0, fmt.Errorf("symbol %q: %w", r, ErrInvalidSymbol)
	}

	// IndexRune reports a byte offset; count runes up to it so multi-byte
	// alphabets stay correct.
	return int64(len([]rune(o.Alphabet[:idx]))), nil
}

// symbolOf maps one numeric code back to its symbol, or ErrCodeRange.
func (o Options) symbolOf(code int64) (rune, error) {
	symbols := []rune(o.Alphabet)
	if code < 0 || code >= int64(len(symbols)) {
		return 0, fmt.Errorf("code %d: %w", code, ErrCodeRange)
	}

	return symbols[code], nil
}
