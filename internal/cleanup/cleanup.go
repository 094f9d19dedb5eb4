// Package cleanup finds orphaned worktree directories.
//
// A directory is an orphan when it sits in the worktree base
// directory, matches the <repo>-<branch> naming convention, and git no
// longer tracks it. That happens when a worktree directory is deleted
// from git's records but left on disk, or copied around by hand.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LooksLikeOrphan reports whether dirName matches the worktree naming
// convention for repoName without being a registered worktree. known
// holds the folder names of all registered worktree paths.
func LooksLikeOrphan(dirName, repoName string, known map[string]struct{}) bool {
	if !strings.HasPrefix(dirName, repoName+"-") {
		return false
	}
	_, registered := known[dirName]
	return !registered
}

// Scan returns directories under baseDir that look like orphaned
// worktrees of repoName. knownPaths are the worktree paths git still
// tracks. The result is sorted by directory name.
func Scan(baseDir, repoName string, knownPaths []string) ([]string, error) {
	known := make(map[string]struct{}, len(knownPaths))
	for _, p := range knownPaths {
		known[filepath.Base(p)] = struct{}{}
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", baseDir, err)
	}

	var orphans []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if LooksLikeOrphan(e.Name(), repoName, known) {
			orphans = append(orphans, filepath.Join(baseDir, e.Name()))
		}
	}
	return orphans, nil
}
