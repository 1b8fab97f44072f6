// Package cli provides the terminal pieces of giteabak: the status glyphs
// printed after each clone and the yes/no prompt used in always-ask mode.
//
// Styling uses [Lipgloss]; colors are dropped automatically when the output is
// not a terminal.
//
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
