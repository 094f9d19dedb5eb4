package main

import (
	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show short status for every worktree",
		Aliases: []string{"st"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Run a short status query against every registered worktree.

Queries run in parallel and a failing worktree (deleted out-of-band,
broken checkout) is reported inline without stopping the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}
			runner := git.Open(root)

			worktrees, err := runner.WorktreeList(ctx)
			if err != nil {
				return err
			}
			if len(worktrees) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			statuses := git.LoadStatuses(ctx, runner, worktrees)
			out.Print(ui.FormatStatuses(statuses))

			failed := 0
			for _, st := range statuses {
				if st.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				log.FromContext(ctx).Printf("Warning: %d worktree(s) could not be queried\n", failed)
			}

			return nil
		},
	}

	return cmd
}
