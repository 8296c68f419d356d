// Package tui provides the terminal prompts for the helpers.
//
// It handles:
//   - Prompt lines with colored ticket and type tags (using lipgloss)
//   - Interactive line input and confirmation (using bubbletea on a terminal)
//   - Plain line input when stdin is piped
package tui
