// Package worktree derives worktree locations from branch names.
package worktree

import (
	"path/filepath"
	"strings"
)

// DerivePath computes the directory for a branch's worktree.
//
// The directory name is prefix + <repo folder> + "-" + <sanitized
// branch>, placed inside baseDir. An empty baseDir falls back to the
// parent of root, making worktrees siblings of the repository checkout.
//
// DerivePath is pure: it never touches the filesystem and the same
// inputs always produce the same path.
func DerivePath(branch, root, baseDir, prefix string) string {
	if baseDir == "" {
		baseDir = filepath.Dir(root)
	}
	name := prefix + filepath.Base(root) + "-" + Sanitize(branch)
	return filepath.Join(baseDir, name)
}

// Sanitize replaces every character outside [A-Za-z0-9._-] with "-",
// so branch names like "feature/auth" become safe directory names.
func Sanitize(branch string) string {
	var b strings.Builder
	b.Grow(len(branch))
	for _, r := range branch {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
