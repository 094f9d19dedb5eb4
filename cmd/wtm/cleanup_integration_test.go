//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCleanup_Force tests deletion of an orphaned directory.
//
// Scenario: A directory matching the naming convention sits next to a
// registered worktree but git does not track it; user runs
// `wtm cleanup -f`
// Expected: The orphan is deleted, the registered worktree survives
func TestCleanup_Force(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	wtPath := filepath.Join(tmpDir, "myrepo-feature")
	setupWorktree(t, repoPath, wtPath, "feature")

	orphan := filepath.Join(tmpDir, "myrepo-orphan")
	writeFile(t, filepath.Join(orphan, "leftover.txt"), "junk\n")

	ctx, out := testContext(t, repoPath)

	cmd := newCleanupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-f"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Errorf("orphan should be deleted, stat err = %v", err)
	}
	if _, err := os.Stat(wtPath); err != nil {
		t.Errorf("registered worktree must survive cleanup: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, orphan) {
		t.Errorf("output should list the orphan, got:\n%s", got)
	}
	if !strings.Contains(got, "Deleted 1 directory") {
		t.Errorf("output should summarize deletions, got:\n%s", got)
	}
}

// TestCleanup_PrunesFirst tests that stale registrations do not shield
// directories from the scan.
//
// Scenario: A worktree directory was deleted and recreated as a plain
// directory, so git still has a stale registration for it
// Expected: cleanup prunes the registration first and then deletes the
// directory as an orphan
func TestCleanup_PrunesFirst(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	zombie := filepath.Join(tmpDir, "myrepo-zombie")
	setupWorktree(t, repoPath, zombie, "zombie")

	if err := os.RemoveAll(zombie); err != nil {
		t.Fatalf("failed to delete worktree directory: %v", err)
	}
	writeFile(t, filepath.Join(zombie, "leftover.txt"), "junk\n")

	ctx, _ := testContext(t, repoPath)

	cmd := newCleanupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-f"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if _, err := os.Stat(zombie); !os.IsNotExist(err) {
		t.Errorf("zombie directory should be deleted, stat err = %v", err)
	}
	if listing := worktreeListing(t, repoPath); strings.Contains(listing, zombie) {
		t.Errorf("stale registration should be pruned:\n%s", listing)
	}
}

// TestCleanup_NonInteractiveDeclines tests the confirmation guard.
//
// Scenario: `wtm cleanup` without -f while stdin is a pipe
// Expected: Nothing is deleted and the output says cancelled
func TestCleanup_NonInteractiveDeclines(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")

	orphan := filepath.Join(tmpDir, "myrepo-orphan")
	writeFile(t, filepath.Join(orphan, "leftover.txt"), "junk\n")

	ctx, out := testContext(t, repoPath)

	cmd := newCleanupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cleanup should not fail when declining: %v", err)
	}

	if _, err := os.Stat(orphan); err != nil {
		t.Errorf("orphan must survive a declined cleanup: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Cancelled") {
		t.Errorf("output should say cancelled, got:\n%s", got)
	}
}

// TestCleanup_NothingFound tests the empty scan.
//
// Scenario: No orphaned directories exist
// Expected: Cleanup reports that and exits cleanly
func TestCleanup_NothingFound(t *testing.T) {
	t.Parallel()

	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo")
	wtPath := filepath.Join(tmpDir, "myrepo-feature")
	setupWorktree(t, repoPath, wtPath, "feature")

	ctx, out := testContext(t, repoPath)

	cmd := newCleanupCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "No orphaned") {
		t.Errorf("output should report nothing found, got:\n%s", got)
	}
	if _, err := os.Stat(wtPath); err != nil {
		t.Errorf("registered worktree must survive: %v", err)
	}
}
