// Command hillcrypt is the terminal front-end of the Hill-cipher
// demonstration. All mathematics lives in the hillcipher engine; this
// binary only parses flags and renders results.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hillcrypt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
