package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/interp"
	"github.com/eap-lang/eap/internal/parser"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an EAP source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	raw, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	source := decodeSource(raw)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		os.Exit(130)
	}()

	p, err := parser.New(source)
	if err != nil {
		return reportAndExit(err, source)
	}
	program, err := p.ParseProgram()
	if err != nil {
		return reportAndExit(err, source)
	}

	reader := interp.NewScannerLineReader(bufio.NewScanner(os.Stdin))
	it := interp.New(os.Stdout, os.Stderr, reader)
	if err := it.Run(program); err != nil {
		return reportAndExit(err, source)
	}
	return nil
}

// reportAndExit prints a syntax or runtime error (with full source context
// and call stack under --debug, single-line otherwise) and exits 1 — spec
// §7: both error kinds abort execution immediately.
func reportAndExit(err error, source string) error {
	if debug {
		fmt.Fprintln(os.Stderr, errors.FormatWithContext(err, source))
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
	return nil
}
