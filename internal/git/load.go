package git

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WorktreeStatus pairs a worktree with its short status output.
type WorktreeStatus struct {
	Worktree
	Status string // git status --short output, empty when clean
	Err    error
}

// Dirty reports whether the worktree has uncommitted changes.
func (s WorktreeStatus) Dirty() bool {
	return strings.TrimSpace(s.Status) != ""
}

// LoadStatuses collects short status for every worktree in parallel.
// Results keep the order of the input. Failures are recorded per entry
// so one broken worktree does not hide the rest.
func LoadStatuses(ctx context.Context, r Runner, worktrees []Worktree) []WorktreeStatus {
	// Results stored by index for stable ordering
	results := make([]WorktreeStatus, len(worktrees))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8) // Bound concurrent git operations

	for i, wt := range worktrees {
		i, wt := i, wt // per-iteration copies; required while go.mod declares go < 1.22
		g.Go(func() error {
			out, err := r.ShortStatus(ctx, wt.Path)
			results[i] = WorktreeStatus{Worktree: wt, Status: out, Err: err}
			return nil // errors are recorded per entry
		})
	}

	_ = g.Wait() // always nil, see above

	return results
}
