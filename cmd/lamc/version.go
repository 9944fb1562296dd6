package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	lamc "github.com/NaveenSingh9999/mexIN"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "lamc v%s (built %s)\n", lamc.Version, lamc.BuildDate)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
