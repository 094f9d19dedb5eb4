package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/ui"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List every worktree registered for the current repository.

The table shows the path, the full branch ref (N/A for detached heads),
the short commit id and the status flags git reports for each entry.`,
		Example: `  wtm list          # table output
  wtm list --json   # machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.Open(root).WorktreeList(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(worktrees)
			}

			if len(worktrees) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			out.Print(ui.FormatWorktrees(worktrees))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
