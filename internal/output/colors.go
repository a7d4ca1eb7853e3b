// Package output renders styled terminal output for config and sample
// summaries.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// sectionStyle colors the "--- Title ---" rules around config dumps
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ccbf1")).
			Bold(true)

	// keyStyle colors config keys in key-value dumps
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4dca7d"))

	// pairedStyle highlights the paired-end verdict
	pairedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5c800")).
			Bold(true)
)

// InitColors downgrades the color profile when stdout is not a terminal so
// piped output stays plain.
func InitColors() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
