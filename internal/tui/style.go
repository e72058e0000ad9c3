package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// ConfigureColors turns styling off when NO_COLOR is set or stdout is not a terminal
func ConfigureColors() {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(os.Stdout) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ColorHeader styles a banner line
func ColorHeader(text string) string { return headerStyle.Render(text) }

// ColorSuccess colors text green
func ColorSuccess(text string) string { return successStyle.Render(text) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return dimStyle.Render(text) }

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}
