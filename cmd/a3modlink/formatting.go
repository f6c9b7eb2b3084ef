package a3modlink

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal reports whether help output lands on a terminal
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBoldUpper renders a usage-template section header: always
// uppercase, bold only when stdout is a terminal
func formatBoldUpper(s string) string {
	upper := strings.ToUpper(s)
	if !stdoutIsTerminal() {
		return upper
	}
	return pterm.Bold.Sprint(upper)
}

// initTemplateFormatting registers the header formatter used by the
// usage template
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"boldUpper": formatBoldUpper,
	})
}
