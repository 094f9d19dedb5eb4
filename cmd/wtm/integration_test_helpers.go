//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
)

// testContext builds the context Execute would provide: discarded
// diagnostics, captured primary output, default global config, and the
// repository lookup rooted at workDir instead of the process working
// directory.
func testContext(t *testing.T, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	return testContextWithConfig(t, config.Default(), workDir)
}

// testContextWithConfig is testContext with a specific global config.
func testContextWithConfig(t *testing.T, cfg config.Config, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	ctx = config.WithConfig(ctx, cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, &buf
}

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command and returns its combined output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit on main in
// dir/name. Returns the absolute path to the repo (symlinks resolved).
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "--initial-branch=main")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// setupTestRepoWithLocalOrigin creates a repo whose origin is a local
// bare repository, with main pushed and tracking. Needed for tests that
// exercise remote branch resolution.
func setupTestRepoWithLocalOrigin(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)

	barePath := filepath.Join(dir, name+".git")
	if err := os.MkdirAll(barePath, 0755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "git", "init", "--bare", "--initial-branch=main")

	repoPath := setupTestRepo(t, dir, name)
	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

// setupWorktree registers a worktree for a new branch.
func setupWorktree(t *testing.T, repoPath, worktreePath, branch string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "worktree", "add", "-b", branch, worktreePath)
}

// createBranch creates a branch without checking it out.
func createBranch(t *testing.T, repoPath, branch string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "branch", branch)
}

// makeDirty creates uncommitted changes in a worktree.
func makeDirty(t *testing.T, worktreePath string) {
	t.Helper()

	filePath := filepath.Join(worktreePath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// branchCount returns how many local branches match name.
func branchCount(t *testing.T, repoPath, name string) int {
	t.Helper()

	out := runGitCommand(t, repoPath, "git", "branch", "--list", name)
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// verifyBranchExists fails the test unless the branch exists locally.
func verifyBranchExists(t *testing.T, repoPath, branch string) {
	t.Helper()

	if branchCount(t, repoPath, branch) == 0 {
		t.Errorf("branch %s should exist in repo", branch)
	}
}

// verifyWorktreeWorks checks that git status works in the worktree.
func verifyWorktreeWorks(t *testing.T, worktreePath string) {
	t.Helper()
	runGitCommand(t, worktreePath, "git", "status")
}

// worktreeListing returns the porcelain worktree listing of the repo.
func worktreeListing(t *testing.T, repoPath string) string {
	t.Helper()
	return runGitCommand(t, repoPath, "git", "worktree", "list", "--porcelain")
}
