// Package hillcipher: sentinel error set.
// All user-triggered failure modes surface as these sentinels (possibly
// wrapped with operation context); tests match them via errors.Is.

package hillcipher

import "errors"

var (
	// ErrInvalidSymbol is returned when a message contains a character
	// outside the configured alphabet (after normalization, if enabled).
	// Nothing is silently stripped or defaulted.
	ErrInvalidSymbol = errors.New("hillcipher: symbol outside the configured alphabet")

	// ErrKeyDimension is returned when the key matrix is not square. The
	// cipher is only defined for n×n keys.
	ErrKeyDimension = errors.New("hillcipher: key matrix must be square")

	// ErrNotInvertible is returned when decryption is requested with a key
	// whose determinant is not coprime with the modulus. This is the
	// expected, user-facing outcome the package exists to demonstrate —
	// an ordinary result, not a bug.
	ErrNotInvertible = errors.New("hillcipher: key matrix is not invertible mod m")

	// ErrBlockLength is returned when a ciphertext code sequence is not a
	// whole number of n-length blocks.
	ErrBlockLength = errors.New("hillcipher: code sequence is not a multiple of the block size")

	// ErrCodeRange is returned when a numeric code falls outside [0, m)
	// and therefore maps to no alphabet symbol.
	ErrCodeRange = errors.New("hillcipher: code outside the alphabet range")

	// ErrBadAlphabet is returned by Options.Validate for a degenerate or
	// inconsistent alphabet (too short, duplicate symbols, length not equal
	// to the modulus, pad symbol missing).
	ErrBadAlphabet = errors.New("hillcipher: invalid alphabet configuration")
)
