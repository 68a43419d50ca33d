package cmd

import (
	"fmt"
	"os"

	"github.com/eap-lang/eap/internal/lexer"
	"github.com/spf13/cobra"
)

// tokensCmd is a developer-only debug aid, not part of the externally
// visible CLI contract — it exercises the tokenizer in isolation, the
// way a "lex" subcommand would in any compiler-style CLI.
var tokensCmd = &cobra.Command{
	Use:    "tokens <file>",
	Short:  "Print the token stream for a source file (debug only)",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		source := decodeSource(raw)

		toks, lexErrs := lexer.Tokenize(source)
		for _, t := range toks {
			fmt.Printf("%-16s %-20q @%d:%d\n", t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
		}
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		if len(lexErrs) > 0 {
			return fmt.Errorf("found %d illegal token(s)", len(lexErrs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
