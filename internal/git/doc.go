// Package git provides the git operations behind wtm.
//
// All operations shell out to the git CLI rather than linking a Go git
// library. This keeps behavior identical to the user's own git (hooks,
// config, credential helpers) and avoids reimplementing worktree
// semantics that git already gets right.
//
// # Runner
//
// Worktree logic is written against [Runner], a narrow interface over
// the handful of git invocations wtm needs (ref lookups, worktree
// add/remove/list/prune, short status). [CLI] is the production
// implementation; tests drive the same logic with an in-memory fake.
//
// # Worktree Operations
//
//   - [CreateWorktree]: resolve a branch and add a worktree for it
//   - [ResolveBranch]: pick local, tracking, or new-branch strategy
//   - [ParseWorktrees]: decode git worktree list --porcelain
//   - [FindWorktree]: match a path or branch against known worktrees
//   - [LoadStatuses]: collect short status across worktrees in parallel
//
// # Repository Discovery
//
// [FindRoot] walks up to the repository root. Inside a linked worktree
// it follows the gitdir pointer back to the main checkout, so path
// derivation and per-repo config behave the same from any worktree.
package git
