package git

import (
	"context"
	"fmt"
	"strings"
)

// Runner is the narrow git surface the worktree operations are built
// on. The production implementation shells out to git; tests drive the
// same logic with an in-memory fake.
type Runner interface {
	// RefExists reports whether ref resolves in the repository.
	RefExists(ctx context.Context, ref string) bool
	// SymbolicRef resolves a symbolic ref such as refs/remotes/origin/HEAD.
	SymbolicRef(ctx context.Context, name string) (string, error)
	// WorktreeAdd runs git worktree add with the given options.
	WorktreeAdd(ctx context.Context, opts AddOptions) error
	// WorktreeRemove removes the worktree at path.
	WorktreeRemove(ctx context.Context, path string, force bool) error
	// WorktreeList returns all worktrees of the repository.
	WorktreeList(ctx context.Context) ([]Worktree, error)
	// WorktreePrune drops stale administrative entries.
	WorktreePrune(ctx context.Context) error
	// ShortStatus returns git status --short output for the worktree at path.
	ShortStatus(ctx context.Context, path string) (string, error)
}

// AddOptions describes a git worktree add invocation.
type AddOptions struct {
	Path       string
	Branch     string // branch to check out, or to create with NewBranch
	NewBranch  bool   // create Branch via -b
	Track      bool   // set upstream tracking, only meaningful with NewBranch
	StartPoint string // commit-ish a new branch starts from
	Force      bool
}

// CLI implements Runner by invoking the git binary against a fixed
// repository directory.
type CLI struct {
	dir string
}

// Open returns a CLI runner rooted at the repository directory dir.
func Open(dir string) *CLI {
	return &CLI{dir: dir}
}

func (g *CLI) RefExists(ctx context.Context, ref string) bool {
	return runGit(ctx, g.dir, "rev-parse", "--verify", "--quiet", ref) == nil
}

func (g *CLI) SymbolicRef(ctx context.Context, name string) (string, error) {
	out, err := outputGit(ctx, g.dir, "symbolic-ref", "--quiet", name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %v", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (g *CLI) WorktreeAdd(ctx context.Context, opts AddOptions) error {
	args := []string{"worktree", "add"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.NewBranch {
		if opts.Track {
			args = append(args, "--track")
		}
		args = append(args, "-b", opts.Branch, opts.Path)
		if opts.StartPoint != "" {
			args = append(args, opts.StartPoint)
		}
	} else {
		args = append(args, opts.Path, opts.Branch)
	}
	if err := runGit(ctx, g.dir, args...); err != nil {
		return fmt.Errorf("failed to create worktree: %v", err)
	}
	return nil
}

func (g *CLI) WorktreeRemove(ctx context.Context, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if err := runGit(ctx, g.dir, args...); err != nil {
		return fmt.Errorf("failed to remove worktree: %v", err)
	}
	return nil
}

func (g *CLI) WorktreeList(ctx context.Context) ([]Worktree, error) {
	out, err := outputGit(ctx, g.dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %v", err)
	}
	return ParseWorktrees(out), nil
}

func (g *CLI) WorktreePrune(ctx context.Context) error {
	if err := runGit(ctx, g.dir, "worktree", "prune"); err != nil {
		return fmt.Errorf("failed to prune worktrees: %v", err)
	}
	return nil
}

func (g *CLI) ShortStatus(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "status", "--short")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %v", err)
	}
	return string(out), nil
}
