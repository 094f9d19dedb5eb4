package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "remove <path|branch>",
		Short:             "Remove a worktree",
		Aliases:           []string{"rm"},
		GroupID:           GroupCore,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorktreeBranches,
		Long: `Remove a registered worktree.

The argument is either a worktree path or a branch name; branch names
are resolved against the current listing. Git refuses to remove a dirty
worktree unless -f is given.`,
		Example: `  wtm remove feature/auth        # by branch
  wtm remove ../app-hotfix       # by path
  wtm remove feature/auth -f     # discard uncommitted changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			target := args[0]
			if strings.TrimSpace(target) == "" {
				return fmt.Errorf("path or branch must not be empty")
			}

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}
			runner := git.Open(root)

			worktrees, err := runner.WorktreeList(ctx)
			if err != nil {
				return err
			}

			wt, err := git.FindWorktree(worktrees, target)
			if err != nil {
				return err
			}

			l.Debug("removing worktree", "path", wt.Path, "branch", wt.Branch)

			if err := runner.WorktreeRemove(ctx, wt.Path, force); err != nil {
				return err
			}

			out.Printf("Removed worktree: %s\n", wt.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force removal even if the worktree is dirty")

	return cmd
}
