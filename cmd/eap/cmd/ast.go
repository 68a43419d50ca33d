package cmd

import (
	"fmt"
	"os"

	"github.com/eap-lang/eap/internal/parser"
	"github.com/spf13/cobra"
)

// astCmd is a developer-only debug aid, not part of the externally
// visible CLI contract — it exercises the parser in isolation, the
// way a "parse" subcommand would in any compiler-style CLI.
var astCmd = &cobra.Command{
	Use:    "ast <file>",
	Short:  "Parse a source file and print its AST (debug only)",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		source := decodeSource(raw)

		p, err := parser.New(source)
		if err != nil {
			return reportAndExit(err, source)
		}
		program, err := p.ParseProgram()
		if err != nil {
			return reportAndExit(err, source)
		}

		fmt.Println(program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
