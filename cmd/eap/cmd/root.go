package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "eap [file]",
	Short: "EAP pseudocode interpreter",
	Long: `eap runs programs written in EAP, a Greek/English dual-keyword
pseudocode teaching language (ΑΛΓΟΡΙΘΜΟΣ/ALGORITHM, ΕΑΝ/IF, ΓΙΑ/FOR, ...).

Identifiers and keywords are matched case- and accent-insensitively, so
ΕΑΝ, εαν and ΈΑΝ all tokenize the same way.

Running "eap <file>" is shorthand for "eap run <file>".`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFile(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print full source context and call stack on error")
}
