// Package main implements the spirv-link CLI.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spirvlink/internal/ui"
	"spirvlink/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "spirv-link",
	Short: "SPIR-V module linker",
	Long:  "spirv-link merges IR modules produced by independent compilations and deduplicates their declarations.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-phase timing information")

	cobra.OnInitialize(configureColor)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureColor() {
	mode, err := rootCmd.PersistentFlags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "on":
		ui.SetColorEnabled(true)
	case "off":
		ui.SetColorEnabled(false)
	default:
		ui.SetColorEnabled(isTerminal(os.Stdout))
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
