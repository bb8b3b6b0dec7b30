package hillcipher_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillcrypt/grid"
	"github.com/katalvlaran/hillcrypt/hillcipher"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEncrypt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The textbook round trip: key [[3,3],[2,5]] with det 9, gcd(9,26)=1,
//	so the key is invertible mod 26 and "HI" comes back intact.
//
// Options:
//   - ClassicOptions: A=0..Z=25, modulus 26.
//
// Use case:
//
//	The "good key" half of the classroom demonstration.
func ExampleEncrypt() {
	k, _ := grid.FromRows([][]int64{{3, 3}, {2, 5}})
	res, err := hillcipher.Encrypt("HI", k, hillcipher.ClassicOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cipher=%s decrypted=%s\n", res.CipherText, res.Decrypted)
	// Output:
	// cipher=TC decrypted=HI
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEncrypt_singularKey
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The "bad key" half: the singular demonstration key encrypts happily
//	but can never decrypt — the failure arrives as a structured result.
//
// Use case:
//
//	Showing a student that the ciphertext exists, yet the message is gone.
func ExampleEncrypt_singularKey() {
	res, err := hillcipher.Encrypt("HELLO", hillcipher.BadKey(), hillcipher.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("have ciphertext: %v\n", len(res.CipherText) > 0)
	fmt.Printf("decryption impossible: %v\n", errors.Is(res.DecryptErr, hillcipher.ErrNotInvertible))
	// Output:
	// have ciphertext: true
	// decryption impossible: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInspect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Diagnosing the singular key: rank 2 of 3, nullity 1, invalid for
//	every modulus.
//
// Use case:
//
//	The property panel of the demonstration front-end.
func ExampleInspect() {
	rep, err := hillcipher.Inspect(hillcipher.BadKey(), hillcipher.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("det=%d rank=%d nullity=%d invertible=%v\n",
		rep.Determinant, rep.Rank, rep.Nullity, rep.Invertible)
	// Output:
	// det=0 rank=2 nullity=1 invertible=false
}
