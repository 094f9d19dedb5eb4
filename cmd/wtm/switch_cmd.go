package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/ui"
)

func newSwitchCmd() *cobra.Command {
	var (
		printPath bool
		copyPath  bool
	)

	cmd := &cobra.Command{
		Use:               "switch [branch]",
		Short:             "Open a shell in a worktree",
		Aliases:           []string{"sw"},
		GroupID:           GroupCore,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeWorktreeBranches,
		Long: `Open an interactive shell ($SHELL, falling back to /bin/sh) with its
working directory set to the chosen worktree. The command returns when
the shell exits and propagates the shell's exit code.

Without a branch argument an interactive fuzzy selector is shown.
Since a child shell cannot change the parent's directory, --print is
provided for shell integration:

  cd "$(wtm switch --print feature)"`,
		Example: `  wtm switch feature/auth     # shell in the worktree
  wtm switch                  # pick interactively
  wtm switch -p feature/auth  # print the path only
  wtm switch --copy hotfix    # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.Open(root).WorktreeList(ctx)
			if err != nil {
				return err
			}

			var wt git.Worktree
			if len(args) == 1 {
				if strings.TrimSpace(args[0]) == "" {
					return fmt.Errorf("branch must not be empty")
				}
				wt, err = git.FindWorktree(worktrees, args[0])
				if err != nil {
					return err
				}
			} else {
				if !isTerminal(os.Stdin) {
					return fmt.Errorf("no branch given and stdin is not a terminal")
				}
				result, err := ui.RunSelector(worktrees)
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Selected {
					out.Println("Cancelled")
					return nil
				}
				wt = result.Worktree
			}

			if printPath {
				out.Println(wt.Path)
				return nil
			}

			if copyPath {
				if err := clipboard.WriteAll(wt.Path); err != nil {
					l.Printf("Warning: clipboard unavailable: %v\n", err)
					out.Println(wt.Path)
					return nil
				}
				out.Printf("Copied to clipboard: %s\n", wt.Path)
				return nil
			}

			return spawnShell(ctx, wt.Path)
		},
	}

	cmd.Flags().BoolVarP(&printPath, "print", "p", false, "Print the worktree path instead of spawning a shell")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the worktree path to the clipboard")

	return cmd
}

// spawnShell starts the user's interactive shell inside dir and blocks
// until it exits. The shell owns the terminal and its own signal
// handling, so it is deliberately not bound to ctx.
func spawnShell(ctx context.Context, dir string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	log.FromContext(ctx).Printf("Switching to %s (exit the shell to return)\n", dir)

	c := exec.Command(shell)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Env = os.Environ()

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to start shell %s: %v", shell, err)
	}
	return nil
}
