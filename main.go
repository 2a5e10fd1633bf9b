// Command rgg checks programs in a small imperative language: it parses a
// begin ... end block by recursive descent, tracks the Number or String type
// of every assigned variable and stops at the first syntax or type error.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/strager/rgg/analyzer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Diagnostics are printed by the command that produced them.
		var diag *analyzer.Diagnostic
		if !errors.As(err, &diag) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
