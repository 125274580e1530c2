// Package ui holds the terminal output styling shared by the CLI commands.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Styles for the dump listing.
var (
	// SectionStyle renders section headers.
	SectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// IDStyle renders result ids.
	IDStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// TypeStyle renders reconstructed type text.
	TypeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Successf formats success messages for the CLI.
var Successf = color.New(color.FgGreen).SprintfFunc()

// SetColorEnabled switches every style between colored and plain output.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
	if !enabled {
		plain := lipgloss.NewStyle()
		SectionStyle = plain
		IDStyle = plain
		TypeStyle = plain
	}
}
