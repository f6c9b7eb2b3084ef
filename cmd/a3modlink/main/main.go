package main

import (
	"fmt"
	"os"

	a3modlink "github.com/Pixelated-Grunt/a3modlink/cmd/a3modlink"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := a3modlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// One line of diagnostic, never a stack trace
		fmt.Fprintln(os.Stderr, pterm.NewStyle(pterm.FgRed).Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
