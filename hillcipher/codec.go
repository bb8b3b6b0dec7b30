package hillcipher

import (
	"fmt"
	"strings"
)

// codesOf converts a message to its numeric code sequence under opts.
// When opts.Normalize is set the message is uppercased first; any symbol
// still outside the alphabet fails with ErrInvalidSymbol, carrying the
// offending rune and its position.
func codesOf(msg string, opts Options) ([]int64, error) {
	if opts.Normalize {
		msg = strings.ToUpper(msg)
	}
	runes := []rune(msg)
	codes := make([]int64, 0, len(runes))
	for pos, r := range runes {
		c, err := opts.codeOf(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		codes = append(codes, c)
	}

	return codes, nil
}

// pad appends the pad symbol's code until len(codes) is a multiple of
// blockSize. An empty sequence stays empty: there is nothing to pad.
func pad(codes []int64, blockSize int, opts Options) ([]int64, error) {
	if len(codes) == 0 || len(codes)%blockSize == 0 {
		return codes, nil
	}
	padCode, err := opts.codeOf(opts.PadSymbol)
	if err != nil {
		// Unreachable after Options.Validate; surfaced for safety.
		return nil, err
	}
	for len(codes)%blockSize != 0 {
		codes = append(codes, padCode)
	}

	return codes, nil
}

// ToText maps a code sequence back to its textual form under opts.
// Fails with ErrCodeRange on any code outside [0, Modulus).
func ToText(codes []int64, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("ToText: %w", err)
	}
	var b strings.Builder
	for _, c := range codes {
		r, err := opts.symbolOf(c)
		if err != nil {
			return "", fmt.Errorf("ToText: %w", err)
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}
