package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FilesName is the per-repo file listing which config files wtm copies
// into new worktrees.
const FilesName = ".worktree-config"

// DefaultFiles is the built-in copy list used when a repository has no
// .worktree-config. It covers the usual gitignored local state: env
// files, editor settings, and AI tool configuration.
var DefaultFiles = []string{
	".env",
	".env.local",
	".env.development",
	".env.test",
	".vscode/settings.json",
	".vscode/launch.json",
	".idea/workspace.xml",
	".mcp.json",
	".claude/settings.local.json",
	"CLAUDE.local.md",
}

// filesHeader is written at the top of every saved .worktree-config.
const filesHeader = "# wtm config files\n# one path per line, relative to the repository root\n"

// LoadFiles reads the config file list for the repository at root.
// A missing file yields the built-in defaults. An unreadable file also
// yields the defaults, with the read error returned so callers can
// warn; the file on disk is left untouched either way.
func LoadFiles(root string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(root, FilesName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return slices.Clone(DefaultFiles), nil
		}
		return slices.Clone(DefaultFiles), fmt.Errorf("failed to read %s: %v", FilesName, err)
	}
	return parseFiles(data), nil
}

// parseFiles returns entries one per line. Blank lines are skipped and
// lines whose first non-blank character is # are comments. Every other
// line is one entry, kept verbatim with spaces included, so unusual
// filenames survive a round trip. Lines of any length and any byte
// content are accepted.
func parseFiles(data []byte) []string {
	var files []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		files = append(files, line)
	}
	return files
}

// SaveFiles writes the config file list for the repository at root,
// creating .worktree-config when it does not exist yet.
func SaveFiles(root string, files []string) error {
	var b strings.Builder
	b.WriteString(filesHeader)
	for _, f := range files {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	path := filepath.Join(root, FilesName)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", FilesName, err)
	}
	return nil
}

// RemoveFile drops the first exact match of entry from files,
// reporting whether it was present.
func RemoveFile(files []string, entry string) ([]string, bool) {
	for i, f := range files {
		if f == entry {
			out := slices.Clone(files)
			return slices.Delete(out, i, i+1), true
		}
	}
	return files, false
}
