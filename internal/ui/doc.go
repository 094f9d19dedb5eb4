// Package ui provides terminal UI components for wtm command output.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for styled terminal output and the interactive surfaces:
//
//   - [FormatWorktrees]: aligned table for the list command with PATH,
//     BRANCH, HEAD and STATUS columns
//   - [FormatStatuses]: per-worktree short status blocks for the status
//     command
//   - [RunSelector]: fuzzy-filtered worktree picker used by switch when
//     no branch argument is given
//
// Fuzzy filtering is backed by the sahilm/fuzzy library; matched
// characters are highlighted in the result list.
//
// All components assume an ANSI-capable terminal. Callers gate the
// interactive pieces on TTY detection and fall back to plain errors
// when stdin is not a terminal.
package ui
