package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/ui/styles"
)

// SelectorResult contains the result of the selection
type SelectorResult struct {
	Worktree  git.Worktree
	Selected  bool // true if user selected, false if cancelled
	Cancelled bool
}

// worktreeSource adapts a worktree slice for fuzzy matching.
// Matching runs against the same label the selector displays.
type worktreeSource []git.Worktree

func (s worktreeSource) String(i int) string { return selectorLabel(s[i]) }
func (s worktreeSource) Len() int            { return len(s) }

// selectorLabel is the display form of a worktree in the picker,
// "folder (branch)", with detached heads labelled as such.
func selectorLabel(wt git.Worktree) string {
	branch := wt.BranchName()
	if branch == "" {
		branch = "detached"
	}
	return fmt.Sprintf("%s (%s)", filepath.Base(wt.Path), branch)
}

// selectorModel is the bubbletea model for worktree selection
type selectorModel struct {
	worktrees []git.Worktree
	matches   []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  *git.Worktree
	cancelled bool
	maxHeight int
}

func newSelectorModel(worktrees []git.Worktree) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = styles.CursorStyle

	m := selectorModel{
		worktrees: worktrees,
		textInput: ti,
		cursor:    0,
		maxHeight: 10,
	}
	m.matches = m.filter("")
	return m
}

// filter ranks worktrees against the query. An empty query keeps the
// listing order.
func (m selectorModel) filter(query string) []fuzzy.Match {
	if query == "" {
		all := make([]fuzzy.Match, len(m.worktrees))
		for i := range m.worktrees {
			all[i] = fuzzy.Match{Index: i}
		}
		return all
	}
	return fuzzy.FindFrom(query, worktreeSource(m.worktrees))
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.matches) > 0 && m.cursor < len(m.matches) {
				m.selected = &m.worktrees[m.matches[m.cursor].Index]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	// Handle text input
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.matches = m.filter(m.textInput.Value())

	// Reset cursor if out of bounds
	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}

	return m, cmd
}

func (m selectorModel) View() string {
	var sb strings.Builder

	sb.WriteString("Select worktree:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.matches) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		// Calculate visible range, centering the cursor while scrolling
		start := 0
		end := len(m.matches)
		if end > m.maxHeight {
			start = m.cursor - m.maxHeight/2
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.matches) {
				end = len(m.matches)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			match := m.matches[i]
			label := selectorLabel(m.worktrees[match.Index])

			if i == m.cursor {
				sb.WriteString(styles.CursorStyle.Render("> "))
				sb.WriteString(renderMatch(label, match.MatchedIndexes, styles.AccentStyle))
			} else {
				sb.WriteString("  ")
				sb.WriteString(renderMatch(label, match.MatchedIndexes, styles.NormalStyle))
			}
			sb.WriteString("\n")
		}

		// Show scroll indicator
		if len(m.matches) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.matches))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// renderMatch renders a label with fuzzy-matched characters highlighted.
func renderMatch(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var sb strings.Builder
	for i, r := range []rune(label) {
		if matchSet[i] {
			sb.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			sb.WriteString(base.Render(string(r)))
		}
	}
	return sb.String()
}

// RunSelector shows an interactive fuzzy search selector for worktrees
// Returns the selected worktree or a cancelled result
func RunSelector(worktrees []git.Worktree) (*SelectorResult, error) {
	if len(worktrees) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newSelectorModel(worktrees))

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(selectorModel)
	if m.cancelled {
		return &SelectorResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &SelectorResult{Worktree: *m.selected, Selected: true}, nil
	}
	return &SelectorResult{Cancelled: true}, nil
}
