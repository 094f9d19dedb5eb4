package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Worktree is one entry of git worktree list --porcelain.
type Worktree struct {
	Path     string `json:"path"`
	Head     string `json:"head,omitempty"`
	Branch   string `json:"branch,omitempty"` // full ref, e.g. refs/heads/feature
	Bare     bool   `json:"bare,omitempty"`
	Detached bool   `json:"detached,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Prunable bool   `json:"prunable,omitempty"`
}

// ErrWorktreeNotFound indicates no worktree matched the given path or
// branch.
var ErrWorktreeNotFound = errors.New("no worktree found")

// ParseWorktrees parses git worktree list --porcelain output. Entries
// are separated by blank lines. Attribute lines this version of git
// emits but wtm does not know are ignored.
func ParseWorktrees(out []byte) []Worktree {
	var (
		worktrees []Worktree
		cur       *Worktree
	)
	flush := func() {
		if cur != nil {
			worktrees = append(worktrees, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			flush()
			continue
		}
		key, val, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			flush()
			cur = &Worktree{Path: val}
		case "HEAD":
			if cur != nil {
				cur.Head = val
			}
		case "branch":
			if cur != nil {
				cur.Branch = val
			}
		case "bare":
			if cur != nil {
				cur.Bare = true
			}
		case "detached":
			if cur != nil {
				cur.Detached = true
			}
		case "locked":
			if cur != nil {
				cur.Locked = true
			}
		case "prunable":
			if cur != nil {
				cur.Prunable = true
			}
		}
	}
	flush()

	return worktrees
}

// BranchName returns the branch without the refs/heads/ prefix, or ""
// for detached and bare entries.
func (w Worktree) BranchName() string {
	return strings.TrimPrefix(w.Branch, "refs/heads/")
}

// BranchDisplay returns the full branch ref, or "N/A" when the entry
// has no branch.
func (w Worktree) BranchDisplay() string {
	if w.Branch == "" {
		return "N/A"
	}
	return w.Branch
}

// ShortHead returns the abbreviated commit id.
func (w Worktree) ShortHead() string {
	if len(w.Head) > 7 {
		return w.Head[:7]
	}
	return w.Head
}

// Flags returns the space-joined state markers of the entry, or
// "clean" when none apply.
func (w Worktree) Flags() string {
	var flags []string
	if w.Bare {
		flags = append(flags, "bare")
	}
	if w.Detached {
		flags = append(flags, "detached")
	}
	if w.Locked {
		flags = append(flags, "locked")
	}
	if w.Prunable {
		flags = append(flags, "prunable")
	}
	if len(flags) == 0 {
		return "clean"
	}
	return strings.Join(flags, " ")
}

// FindWorktree matches target against worktree paths first, then
// branch names. Target may be a path (relative paths resolve against
// the working directory), a branch name, or a full branch ref.
func FindWorktree(worktrees []Worktree, target string) (Worktree, error) {
	abs, _ := filepath.Abs(target)
	for _, w := range worktrees {
		if w.Path == target || (abs != "" && w.Path == abs) {
			return w, nil
		}
	}
	for _, w := range worktrees {
		if w.Branch == "" {
			continue
		}
		if w.Branch == target || w.BranchName() == target {
			return w, nil
		}
	}
	return Worktree{}, fmt.Errorf("%w for %q", ErrWorktreeNotFound, target)
}
