package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	lamc "github.com/NaveenSingh9999/mexIN"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	typeColor := color.New(color.FgCyan)
	errColor := color.New(color.FgRed, color.Bold)

	fmt.Fprintf(out, "Tokenizing: %s\n", args[0])
	fmt.Fprintf(out, "%-15s %-20s %s\n", "TYPE", "LEXEME", "POSITION")
	fmt.Fprintln(out, "-----------------------------------------------------------")

	for _, tok := range lamc.NewLexer(src).Scan() {
		c := typeColor
		if tok.IsErr() {
			c = errColor
		}
		c.Fprintf(out, "%-15s", tok.Type)
		fmt.Fprintf(out, " %-20s (line %d, col %d)\n",
			fmt.Sprintf("'%s'", tok.Lexeme), tok.Line, tok.Col)
	}
	return nil
}

// readSource loads a source file, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(b), nil
}
