// Package cmd executes external commands with context cancellation and
// useful error messages.
//
// Failures capture trimmed stderr and surface it as the error text, so a
// git failure reads as "fatal: not a git repository" instead of
// "exit status 128".
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoPath, "git", "worktree", "prune"); err != nil {
//	    return fmt.Errorf("failed to prune worktrees: %v", err)
//	}
//
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "worktree", "list", "--porcelain")
//
// # Design Notes
//
// wtm shells out to the git CLI rather than linking a Go git library.
// This keeps behavior identical to the user's git (hooks, config,
// credential helpers) and avoids reimplementing worktree semantics.
package cmd
