package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the wtm global configuration.
type Config struct {
	BaseDir     string `toml:"base_dir"`     // where new worktrees go; empty = sibling of the repo
	Prefix      string `toml:"prefix"`       // prepended to worktree folder names
	CopyConfigs bool   `toml:"copy_configs"` // copy config files into new worktrees
}

// Default returns the default configuration.
func Default() Config {
	return Config{CopyConfigs: true}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error for relative paths like "." or "..".
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the default config file location.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wtm", "config.toml"), nil
}

// Load reads the global config. An empty path means the default
// location (~/.config/wtm/config.toml). A missing file yields
// Default() without error; a file that exists but does not parse or
// validate is an error.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.BaseDir, "base_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in base_dir (the shell doesn't expand inside config files)
	if cfg.BaseDir != "" {
		expanded, err := ExpandPath(cfg.BaseDir)
		if err != nil {
			return Default(), fmt.Errorf("expand base_dir: %w", err)
		}
		cfg.BaseDir = expanded
	}

	return cfg, nil
}

const defaultConfig = `# wtm configuration

# Base directory for new worktrees
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Examples: "/Users/you/Git/worktrees" or "~/Git/worktrees"
# If not set, worktrees are created next to the repository checkout.
# base_dir = "~/Git/worktrees"

# Prefix prepended to every worktree folder name
# With prefix = "wt-", branch "feature" in repo "api" becomes "wt-api-feature"
# prefix = ""

# Copy per-repo config files (.env, editor settings, ...) into new worktrees
# The file list lives in .worktree-config at the repository root;
# manage it with "wtm config --add/--remove/--reset"
copy_configs = true
`

// Init writes a fresh default config file. An empty path means the
// default location. Existing files are only overwritten with force.
// Returns the path of the written file.
func Init(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return "", err
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
