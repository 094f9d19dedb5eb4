package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/cleanup"
	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/ui/prompt"
)

func newCleanupCmd() *cobra.Command {
	var (
		force   bool
		baseDir string
	)

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Delete orphaned worktree directories",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Find directories that follow the worktree naming convention but are no
longer registered, and delete them.

Detection is a name heuristic: a directory in the base directory counts
as orphaned when it is named <repo>-<something> and no registered
worktree points at it. A reference prune runs first so metadata of
manually deleted worktrees does not mask orphans.

Without -f each run lists the candidates and asks for confirmation;
when stdin is not a terminal the answer counts as no.`,
		Example: `  wtm cleanup       # list candidates and confirm
  wtm cleanup -f    # delete without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}
			runner := git.Open(root)

			if err := runner.WorktreePrune(ctx); err != nil {
				return err
			}

			worktrees, err := runner.WorktreeList(ctx)
			if err != nil {
				return err
			}

			known := make([]string, 0, len(worktrees))
			for _, wt := range worktrees {
				known = append(known, wt.Path)
			}

			base := resolveBaseDir(baseDir, cfg, root)
			candidates, err := cleanup.Scan(base, filepath.Base(root), known)
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				out.Println("No orphaned worktree directories found")
				return nil
			}

			out.Printf("Found %d orphaned directory(s):\n", len(candidates))
			for _, dir := range candidates {
				out.Printf("  %s\n", dir)
			}

			if !force {
				if !isTerminal(os.Stdin) {
					out.Println("Cancelled (stdin is not a terminal; use -f to delete without confirmation)")
					return nil
				}
				result, err := prompt.Confirm(fmt.Sprintf("Delete %d directory(s)?", len(candidates)))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					out.Println("Cancelled")
					return nil
				}
			}

			deleted, failed := 0, 0
			for _, dir := range candidates {
				if err := os.RemoveAll(dir); err != nil {
					l.Printf("Warning: failed to delete %s: %v\n", dir, err)
					failed++
					continue
				}
				out.Printf("Deleted: %s\n", dir)
				deleted++
			}

			if failed > 0 {
				out.Printf("Deleted %d directory(s), %d failed\n", deleted, failed)
			} else {
				out.Printf("Deleted %d directory(s)\n", deleted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")
	cmd.Flags().StringVarP(&baseDir, "base-dir", "d", "", "Base directory to scan (default: parent of repo)")

	return cmd
}
