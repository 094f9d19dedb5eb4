package cleanup

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLooksLikeOrphan(t *testing.T) {
	t.Parallel()

	known := map[string]struct{}{
		"myrepo-feature": {},
		"myrepo-main":    {},
	}

	tests := []struct {
		name    string
		dirName string
		want    bool
	}{
		{"unregistered with convention name", "myrepo-old-branch", true},
		{"registered worktree", "myrepo-feature", false},
		{"registered main worktree", "myrepo-main", false},
		{"the repo checkout itself", "myrepo", false},
		{"different repo", "otherrepo-feature", false},
		{"repo name as prefix without dash", "myrepofeature", false},
		{"empty branch part", "myrepo-", true},
		{"unrelated directory", "downloads", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LooksLikeOrphan(tt.dirName, "myrepo", known); got != tt.want {
				t.Errorf("LooksLikeOrphan(%q) = %v, want %v", tt.dirName, got, tt.want)
			}
		})
	}
}

func TestLooksLikeOrphan_NilKnown(t *testing.T) {
	t.Parallel()

	if !LooksLikeOrphan("myrepo-x", "myrepo", nil) {
		t.Error("nil known map should treat convention names as orphans")
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("finds only unregistered convention dirs", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		for _, d := range []string{"myrepo", "myrepo-feature", "myrepo-stale", "myrepo-gone", "other-thing"} {
			if err := os.Mkdir(filepath.Join(base, d), 0755); err != nil {
				t.Fatal(err)
			}
		}
		// Files never count, even with a convention name
		if err := os.WriteFile(filepath.Join(base, "myrepo-notes.txt"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := Scan(base, "myrepo", []string{
			filepath.Join(base, "myrepo"),
			filepath.Join(base, "myrepo-feature"),
		})
		if err != nil {
			t.Fatalf("Scan = %v", err)
		}
		want := []string{
			filepath.Join(base, "myrepo-gone"),
			filepath.Join(base, "myrepo-stale"),
		}
		if !slices.Equal(got, want) {
			t.Errorf("Scan = %v, want %v", got, want)
		}
	})

	t.Run("clean base dir yields nothing", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		if err := os.Mkdir(filepath.Join(base, "myrepo"), 0755); err != nil {
			t.Fatal(err)
		}

		got, err := Scan(base, "myrepo", []string{filepath.Join(base, "myrepo")})
		if err != nil {
			t.Fatalf("Scan = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Scan = %v, want empty", got)
		}
	})

	t.Run("missing base dir errors", func(t *testing.T) {
		t.Parallel()
		if _, err := Scan(filepath.Join(t.TempDir(), "nope"), "myrepo", nil); err == nil {
			t.Fatal("Scan = nil, want error for missing dir")
		}
	})
}
