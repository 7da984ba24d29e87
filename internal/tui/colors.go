package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColors drops to plain ASCII output when NO_COLOR is set or stdout is not a terminal
func ConfigureColors() {
	if os.Getenv("NO_COLOR") != "" || !IsTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim renders text in a muted grey
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(text)
}

// Bold renders text in bold
func Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}
