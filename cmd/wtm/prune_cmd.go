package main

import (
	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/output"
)

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Prune stale worktree references",
		Aliases: []string{"p"},
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Remove worktree metadata for directories that were deleted manually.

This delegates to git's own pruning and never touches directories on
disk; use cleanup for leftover directories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			if err := git.Open(root).WorktreePrune(ctx); err != nil {
				return err
			}

			output.FromContext(ctx).Println("Pruned stale worktree references")
			return nil
		},
	}

	return cmd
}
