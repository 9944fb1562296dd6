package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "lamc",
	Short: "LAMC language front end",
	Long: `lamc tokenizes and parses LAMC source files.

It exposes the compiler front end directly: dump the token stream, dump the
syntax tree, or explore the language interactively in the REPL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
