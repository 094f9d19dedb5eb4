package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/ui/styles"
)

// FormatWorktrees creates a formatted table for worktrees with PATH,
// BRANCH, HEAD and STATUS columns.
func FormatWorktrees(worktrees []git.Worktree) string {
	if len(worktrees) == 0 {
		return ""
	}

	// Track max widths for each column
	widths := []int{len("PATH"), len("BRANCH"), len("HEAD"), len("STATUS")}

	var rows []table.Row
	for _, wt := range worktrees {
		head := wt.ShortHead()
		if head == "" {
			head = "-"
		}

		row := table.Row{wt.Path, wt.BranchDisplay(), head, wt.Flags()}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	// Column widths plus spacing
	columns := []table.Column{
		{Title: "PATH", Width: widths[0] + 2},
		{Title: "BRANCH", Width: widths[1] + 2},
		{Title: "HEAD", Width: widths[2] + 2},
		{Title: "STATUS", Width: widths[3]},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	// Style the table
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Padding(0)
	s.Cell = lipgloss.NewStyle().Padding(0)
	s.Selected = lipgloss.NewStyle().Padding(0)
	t.SetStyles(s)

	return t.View() + "\n"
}

// FormatStatuses renders per-worktree short status blocks in listing
// order. Failed queries are reported inline so one broken worktree does
// not hide the rest.
func FormatStatuses(statuses []git.WorktreeStatus) string {
	var sb strings.Builder

	for i, st := range statuses {
		if i > 0 {
			sb.WriteString("\n")
		}

		header := fmt.Sprintf("%s (%s)", st.Path, st.BranchDisplay())
		sb.WriteString(styles.AccentStyle.Render(header))
		sb.WriteString("\n")

		switch {
		case st.Err != nil:
			sb.WriteString(styles.ErrorStyle.Render("  error: " + st.Err.Error()))
			sb.WriteString("\n")
		case !st.Dirty():
			sb.WriteString(styles.MutedStyle.Render("  clean"))
			sb.WriteString("\n")
		default:
			for _, line := range strings.Split(strings.TrimRight(st.Status, "\n"), "\n") {
				sb.WriteString("  " + line + "\n")
			}
		}
	}

	return sb.String()
}
