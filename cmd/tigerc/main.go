// Command tigerc drives the Tiger compiler core against AST fixtures:
// the lexer, parser and Java back end are out of scope (spec.md §1), so
// this binary exists only to exercise the symbol table, type finder and
// checker framework end to end.
package main

import (
	"fmt"
	"os"

	"github.com/tiger-compiler/core/cmd/tigerc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
