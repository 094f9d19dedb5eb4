package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotARepository indicates a directory is not inside a git
// repository.
var ErrNotARepository = errors.New("not a git repository")

// FindRoot walks up from dir to the repository root. Inside a linked
// worktree the main repository root is returned, so derived paths and
// per-repo config stay stable no matter which worktree the command
// runs from.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %v", dir, err)
	}

	for cur := abs; ; {
		info, statErr := os.Stat(filepath.Join(cur, ".git"))
		if statErr == nil {
			if info.IsDir() {
				return cur, nil
			}
			// .git file means linked worktree; follow it home
			if main, err := mainRepoPath(cur); err == nil {
				return main, nil
			}
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("%w: %s", ErrNotARepository, abs)
		}
		cur = parent
	}
}

// mainRepoPath resolves the main repository root from a linked
// worktree directory by following the gitdir pointer in its .git file.
// The pointer targets <main>/.git/worktrees/<name>.
func mainRepoPath(worktreeDir string) (string, error) {
	gitFile := filepath.Join(worktreeDir, ".git")
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(data)), "\n")
	gitdir, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	if !ok {
		return "", fmt.Errorf("no gitdir pointer in %s", gitFile)
	}
	gitdir = strings.TrimSpace(gitdir)
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(worktreeDir, gitdir)
	}
	gitdir = filepath.Clean(gitdir)

	for cur := gitdir; ; {
		if filepath.Base(cur) == ".git" {
			return filepath.Dir(cur), nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("gitdir %s is not under a .git directory", gitdir)
		}
		cur = parent
	}
}

// DefaultBranch returns the branch new work is based on. It prefers
// the remote's symbolic HEAD, then well-known remote branches, then
// falls back to "main".
func DefaultBranch(ctx context.Context, r Runner) string {
	if ref, err := r.SymbolicRef(ctx, "refs/remotes/origin/HEAD"); err == nil && ref != "" {
		if name := path.Base(ref); name != "" && name != "." && name != "HEAD" {
			return name
		}
	}
	if r.RefExists(ctx, "refs/remotes/origin/main") {
		return "main"
	}
	if r.RefExists(ctx, "refs/remotes/origin/master") {
		return "master"
	}
	return "main"
}
