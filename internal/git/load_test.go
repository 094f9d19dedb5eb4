package git

import (
	"context"
	"fmt"
	"testing"
)

func TestLoadStatuses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()
		var worktrees []Worktree
		statuses := make(map[string]string)
		for i := 0; i < 20; i++ {
			path := fmt.Sprintf("/wt/%02d", i)
			worktrees = append(worktrees, Worktree{Path: path})
			statuses[path] = fmt.Sprintf(" M file%02d.go\n", i)
		}
		r := &fakeRunner{statuses: statuses}

		results := LoadStatuses(ctx, r, worktrees)
		if len(results) != len(worktrees) {
			t.Fatalf("got %d results, want %d", len(results), len(worktrees))
		}
		for i, res := range results {
			if res.Worktree.Path != worktrees[i].Path {
				t.Errorf("result %d is for %q, want %q", i, res.Worktree.Path, worktrees[i].Path)
			}
			if res.Status != statuses[worktrees[i].Path] {
				t.Errorf("result %d status = %q", i, res.Status)
			}
		}
	})

	t.Run("failures recorded per entry", func(t *testing.T) {
		t.Parallel()
		worktrees := []Worktree{
			{Path: "/ok"},
			{Path: "/broken"},
			{Path: "/also-ok"},
		}
		r := &fakeRunner{
			statuses:  map[string]string{"/ok": "", "/also-ok": "?? new.txt\n"},
			statusErr: map[string]error{"/broken": fmt.Errorf("fatal: unsafe repository")},
		}

		results := LoadStatuses(ctx, r, worktrees)
		if results[0].Err != nil {
			t.Errorf("results[0].Err = %v, want nil", results[0].Err)
		}
		if results[1].Err == nil {
			t.Error("results[1].Err = nil, want error")
		}
		if results[2].Err != nil {
			t.Errorf("results[2].Err = %v, want nil", results[2].Err)
		}
		if results[2].Status != "?? new.txt\n" {
			t.Errorf("results[2].Status = %q", results[2].Status)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		results := LoadStatuses(ctx, &fakeRunner{}, nil)
		if len(results) != 0 {
			t.Errorf("got %d results, want 0", len(results))
		}
	})
}

func TestWorktreeStatus_Dirty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"empty is clean", "", false},
		{"whitespace only is clean", "\n", false},
		{"modified file is dirty", " M main.go\n", true},
		{"untracked file is dirty", "?? notes.txt\n", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := WorktreeStatus{Status: tt.status}
			if got := s.Dirty(); got != tt.want {
				t.Errorf("Dirty() = %v, want %v", got, tt.want)
			}
		})
	}
}
