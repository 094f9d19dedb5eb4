package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/git"
)

// repoRoot locates the repository root starting from the context working
// directory.
func repoRoot(ctx context.Context) (string, error) {
	return git.FindRoot(config.WorkDirFromContext(ctx))
}

// resolveBaseDir picks the directory new worktrees are placed in: flag
// over global config over the parent of the repository root.
func resolveBaseDir(flag string, cfg config.Config, root string) string {
	switch {
	case flag != "":
		if expanded, err := config.ExpandPath(flag); err == nil {
			return expanded
		}
		return flag
	case cfg.BaseDir != "":
		return cfg.BaseDir
	default:
		return filepath.Dir(root)
	}
}

// splitList parses a comma-separated flag value, dropping empty parts.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// completeWorktreeBranches offers the branches of registered worktrees
// for shell completion.
func completeWorktreeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()

	root, err := repoRoot(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	worktrees, err := git.Open(root).WorktreeList(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, wt := range worktrees {
		if name := wt.BranchName(); name != "" {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
