package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lamc "github.com/NaveenSingh9999/mexIN"
)

var astPretty bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAst,
}

func init() {
	astCmd.Flags().BoolVar(&astPretty, "pretty", false, "Render diagnostics as caret-annotated snippets")
}

func runAst(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	program, err := lamc.Parse(src)
	if err != nil {
		printDiagnostics(src, err, astPretty)
		return fmt.Errorf("%s: parse failed", args[0])
	}

	lamc.FprintProgram(cmd.OutOrStdout(), program)
	return nil
}

// printDiagnostics writes every diagnostic of a parse failure to stderr, in
// red when the terminal supports it.
func printDiagnostics(src string, err error, pretty bool) {
	errColor := color.New(color.FgRed)

	var pe *lamc.ParseError
	if !errors.As(err, &pe) {
		errColor.Fprintln(os.Stderr, err.Error())
		return
	}
	for _, d := range pe.Diags {
		if pretty {
			errColor.Fprintln(os.Stderr, d.Pretty(src))
		} else {
			errColor.Fprintln(os.Stderr, d.String())
		}
	}
}
