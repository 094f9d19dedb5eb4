package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/joel-eq/worktree-manager/internal/git"
)

func TestFormatWorktrees(t *testing.T) {
	t.Parallel()

	t.Run("empty listing renders nothing", func(t *testing.T) {
		t.Parallel()

		if out := FormatWorktrees(nil); out != "" {
			t.Errorf("FormatWorktrees(nil) = %q, want empty", out)
		}
	})

	t.Run("includes all columns and values", func(t *testing.T) {
		t.Parallel()

		out := FormatWorktrees([]git.Worktree{
			{Path: "/repos/app", Branch: "refs/heads/main", Head: "0123456789abcdef"},
			{Path: "/repos/app-fix", Head: "fedcba9876543210", Detached: true, Locked: true},
		})

		wants := []string{
			"PATH", "BRANCH", "HEAD", "STATUS",
			"/repos/app", "refs/heads/main", "0123456", "clean",
			"/repos/app-fix", "N/A", "fedcba9", "detached locked",
		}
		for _, want := range wants {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("bare worktree has no head", func(t *testing.T) {
		t.Parallel()

		out := FormatWorktrees([]git.Worktree{
			{Path: "/repos/app.git", Bare: true},
		})

		for _, want := range []string{"/repos/app.git", "bare", "-"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestFormatStatuses(t *testing.T) {
	t.Parallel()

	statuses := []git.WorktreeStatus{
		{
			Worktree: git.Worktree{Path: "/repos/app", Branch: "refs/heads/main"},
			Status:   " M go.mod\n?? notes.txt\n",
		},
		{
			Worktree: git.Worktree{Path: "/repos/app-fix", Branch: "refs/heads/fix"},
		},
		{
			Worktree: git.Worktree{Path: "/repos/gone", Branch: "refs/heads/x"},
			Err:      errors.New("status failed"),
		},
	}

	out := FormatStatuses(statuses)

	wants := []string{
		"/repos/app (refs/heads/main)",
		" M go.mod",
		"?? notes.txt",
		"/repos/app-fix (refs/heads/fix)",
		"clean",
		"/repos/gone (refs/heads/x)",
		"error: status failed",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Output follows listing order.
	if strings.Index(out, "/repos/app ") > strings.Index(out, "/repos/app-fix") {
		t.Error("statuses rendered out of order")
	}
}

func TestFormatStatuses_Empty(t *testing.T) {
	t.Parallel()

	if out := FormatStatuses(nil); out != "" {
		t.Errorf("FormatStatuses(nil) = %q, want empty", out)
	}
}
