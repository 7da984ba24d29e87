// Package tui provides the terminal user interface for gca.
//
// It handles:
//   - Interactive prompts and selections (using survey and bubbletea)
//   - Line-based prompts for piped or non-terminal input
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
