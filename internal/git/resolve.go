package git

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Strategy selects how a branch materializes into a worktree.
type Strategy int

const (
	// StrategyLocal checks out an existing local branch.
	StrategyLocal Strategy = iota
	// StrategyTrack creates a local branch tracking its origin twin.
	StrategyTrack
	// StrategyCreate starts a new branch from the default branch.
	StrategyCreate
)

func (s Strategy) String() string {
	switch s {
	case StrategyLocal:
		return "local"
	case StrategyTrack:
		return "track"
	case StrategyCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Resolution describes how a branch will be turned into a worktree.
type Resolution struct {
	Strategy   Strategy
	StartPoint string // origin/<branch> for track, the default branch for create
}

// ResolveBranch decides the worktree strategy for branch: attach when
// the local branch exists, track when only origin has it, otherwise
// create it from the default branch.
func ResolveBranch(ctx context.Context, r Runner, branch string) Resolution {
	if r.RefExists(ctx, "refs/heads/"+branch) {
		return Resolution{Strategy: StrategyLocal}
	}
	if r.RefExists(ctx, "refs/remotes/origin/"+branch) {
		return Resolution{Strategy: StrategyTrack, StartPoint: "origin/" + branch}
	}
	return Resolution{Strategy: StrategyCreate, StartPoint: DefaultBranch(ctx, r)}
}

// ErrPathExists indicates the target worktree path is already taken.
var ErrPathExists = errors.New("worktree path already exists")

// CreateOptions describes a worktree creation request.
type CreateOptions struct {
	Branch string
	Path   string
	Force  bool
}

// CreateWorktree resolves the branch and adds a worktree for it at the
// requested path. Without Force an existing path is rejected before
// git runs; with Force the collision is left to git to sort out.
func CreateWorktree(ctx context.Context, r Runner, opts CreateOptions) (Resolution, error) {
	if !opts.Force {
		if _, err := os.Stat(opts.Path); err == nil {
			return Resolution{}, fmt.Errorf("%w: %s (use --force to override)", ErrPathExists, opts.Path)
		}
	}

	res := ResolveBranch(ctx, r, opts.Branch)

	add := AddOptions{
		Path:   opts.Path,
		Branch: opts.Branch,
		Force:  opts.Force,
	}
	switch res.Strategy {
	case StrategyTrack:
		add.NewBranch = true
		add.Track = true
		add.StartPoint = res.StartPoint
	case StrategyCreate:
		add.NewBranch = true
		add.StartPoint = res.StartPoint
	}

	if err := r.WorktreeAdd(ctx, add); err != nil {
		return res, err
	}
	return res, nil
}
