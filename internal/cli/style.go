package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
)

const (
	successGlyph = "✓"
	failureGlyph = "✘"
)

// Success renders the green check mark printed after a successful clone
func Success() string {
	return successStyle.Render(successGlyph)
}

// Failure renders the red cross printed after a failed clone
func Failure() string {
	return errorStyle.Render(failureGlyph)
}

// Error renders msg in red
func Error(msg string) string {
	return errorStyle.Render(msg)
}

// Name renders a repository name
func Name(name string) string {
	return nameStyle.Render(name)
}
