// wordmatch reports which vocabulary words appear as whole lines of a text
// file, and on which lines.
package main

import (
	"fmt"
	"os"

	"github.com/corey/wordmatch/cmd/wordmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		os.Exit(1)
	}
}
