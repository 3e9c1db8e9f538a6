package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "tigerc",
	Short: "Tiger language semantic checker",
	Long: `tigerc runs the Tiger compiler core — symbol resolution, type
inference and the semantic checker framework — against a JSON or YAML
encoded abstract syntax tree.

It does not lex or parse Tiger source text: feed it AST fixtures
produced by a Tiger front end, or hand-author one under testdata/
fixtures for experimentation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("tigerc version %s\n", Version))
}
