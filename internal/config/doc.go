// Package config handles wtm configuration.
//
// Two layers exist:
//
//   - the global config at ~/.config/wtm/config.toml (TOML): the base
//     directory for new worktrees, a folder name prefix, and whether
//     new worktrees receive copied config files
//   - the per-repo copy list in .worktree-config at the repository
//     root: one relative path per line, managed by "wtm config"
//
// Settings resolve flag > config file > built-in default.
//
// # Global Config
//
//   - base_dir: target directory for new worktrees (absolute or ~/...)
//   - prefix: prepended to worktree folder names
//   - copy_configs: whether "wtm create" copies config files
//
// A missing global config is not an error; defaults apply. A config
// that exists but fails to parse or validate is reported and the
// defaults are used for that invocation.
//
// # Per-Repo Copy List
//
// .worktree-config lists gitignored files worth carrying into a fresh
// worktree (.env files, editor settings). Without the file a built-in
// default list applies. The format is plain text so the file can be
// edited by hand and reviewed in version control.
package config
