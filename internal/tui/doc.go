// Package tui provides the terminal user interface for packager.
//
// It handles:
//   - Structured logging and status reporting (Splog), optionally mirrored to a rotating log file
//   - Interactive prompts (using survey and bubbletea)
//   - Terminal styling and colors (using lipgloss)
package tui
