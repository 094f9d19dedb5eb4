package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joel-eq/worktree-manager/internal/git"
)

func selectorWorktrees() []git.Worktree {
	return []git.Worktree{
		{Path: "/repos/app", Branch: "refs/heads/main", Head: "aaaaaaaaaaaa"},
		{Path: "/repos/app-feature-auth", Branch: "refs/heads/feature/auth", Head: "bbbbbbbbbbbb"},
		{Path: "/repos/app-hotfix", Head: "cccccccccccc", Detached: true},
	}
}

// typeString feeds each rune of s into the model as a key press.
func typeString(t *testing.T, m selectorModel, s string) selectorModel {
	t.Helper()

	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(selectorModel)
	}
	return m
}

func TestSelectorLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		worktree git.Worktree
		want     string
	}{
		{
			name:     "branch without ref prefix",
			worktree: git.Worktree{Path: "/repos/app", Branch: "refs/heads/main"},
			want:     "app (main)",
		},
		{
			name:     "nested branch name",
			worktree: git.Worktree{Path: "/repos/app-feature-auth", Branch: "refs/heads/feature/auth"},
			want:     "app-feature-auth (feature/auth)",
		},
		{
			name:     "detached head",
			worktree: git.Worktree{Path: "/repos/app-hotfix", Detached: true},
			want:     "app-hotfix (detached)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := selectorLabel(tt.worktree); got != tt.want {
				t.Errorf("selectorLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectorModel_EmptyQueryKeepsOrder(t *testing.T) {
	t.Parallel()

	m := newSelectorModel(selectorWorktrees())

	if len(m.matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(m.matches))
	}
	for i, match := range m.matches {
		if match.Index != i {
			t.Errorf("matches[%d].Index = %d, want %d", i, match.Index, i)
		}
	}
}

func TestSelectorModel_FilterNarrows(t *testing.T) {
	t.Parallel()

	m := typeString(t, newSelectorModel(selectorWorktrees()), "auth")

	if len(m.matches) != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "auth", len(m.matches))
	}
	if m.matches[0].Index != 1 {
		t.Errorf("match index = %d, want 1", m.matches[0].Index)
	}
}

func TestSelectorModel_CursorClampedAfterFilter(t *testing.T) {
	t.Parallel()

	m := newSelectorModel(selectorWorktrees())
	m.cursor = 2

	m = typeString(t, m, "auth")

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after narrowing", m.cursor)
	}
}

func TestSelectorModel_EnterSelects(t *testing.T) {
	t.Parallel()

	m := newSelectorModel(selectorWorktrees())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(selectorModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(selectorModel)

	if m.selected == nil {
		t.Fatal("expected a selection after enter")
	}
	if m.selected.Path != "/repos/app-feature-auth" {
		t.Errorf("selected path = %q, want %q", m.selected.Path, "/repos/app-feature-auth")
	}
}

func TestSelectorModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := newSelectorModel(selectorWorktrees())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(selectorModel)

	if !m.cancelled {
		t.Error("expected cancelled after esc")
	}
}

func TestSelectorModel_View(t *testing.T) {
	t.Parallel()

	view := newSelectorModel(selectorWorktrees()).View()

	for _, want := range []string{"Select worktree:", "app (main)", "app-hotfix (detached)", "navigate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRunSelector_EmptyListCancels(t *testing.T) {
	t.Parallel()

	result, err := RunSelector(nil)
	if err != nil {
		t.Fatalf("RunSelector() error = %v", err)
	}
	if !result.Cancelled || result.Selected {
		t.Errorf("result = %+v, want cancelled", result)
	}
}
