package hillcipher

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillcrypt/grid"
)

// Result is the full outcome of one demonstration round: encode, then
// attempt to decode with the same key. A failed decryption is part of
// the result, not an error — the front-end shows it side by side with
// the ciphertext to make the information loss visible.
type Result struct {
	Plain      string  // normalized, padded plaintext actually encrypted
	PlainCodes []int64 // plaintext as numeric codes (post padding)
	Cipher     []int64 // ciphertext codes, block-major
	CipherText string  // ciphertext rendered through the alphabet
	Decrypted  string  // recovered plaintext; empty when DecryptErr != nil
	DecryptErr error   // ErrNotInvertible (wrapped) when the key cannot decrypt
}

// Encrypt runs the full demonstration round with key under opts.
//
// Structural problems (bad options, non-square key, invalid symbol)
// return an error. A key that encrypts fine but cannot decrypt returns
// a Result whose DecryptErr records the ErrNotInvertible verdict; the
// round-trip plaintext lands in Decrypted otherwise.
func Encrypt(msg string, key *grid.Grid, opts Options) (Result, error) {
	cipher, err := Encode(msg, key, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}

	// Reconstruct the padded plaintext for display: decode-independent,
	// so it is available even when the key cannot decrypt.
	plainCodes, err := codesOf(msg, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}
	if plainCodes, err = pad(plainCodes, key.Rows(), opts); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}
	plain, err := ToText(plainCodes, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}
	cipherText, err := ToText(cipher, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}

	res := Result{
		Plain:      plain,
		PlainCodes: plainCodes,
		Cipher:     cipher,
		CipherText: cipherText,
	}

	decoded, err := Decode(cipher, key, opts)
	switch {
	case errors.Is(err, ErrNotInvertible):
		// The expected demonstration outcome: structured, not swallowed.
		res.DecryptErr = err

		return res, nil
	case err != nil:
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}
	if res.Decrypted, err = ToText(decoded, opts); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEncrypt, err)
	}

	return res, nil
}
