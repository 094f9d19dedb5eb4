package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/copier"
	"github.com/joel-eq/worktree-manager/internal/git"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/worktree"
)

func newCreateCmd() *cobra.Command {
	var (
		baseDir       string
		prefix        string
		force         bool
		copyConfigs   bool
		noCopyConfigs bool
		configFiles   string
	)

	cmd := &cobra.Command{
		Use:     "create <branch> [path]",
		Short:   "Create a worktree for a branch",
		Aliases: []string{"c"},
		GroupID: GroupCore,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Create a worktree for a branch.

The destination defaults to <base-dir>/<prefix><repo>-<branch> with
every character outside [A-Za-z0-9._-] in the branch name replaced by a
hyphen. An existing local branch is attached as-is, a branch found on
origin is checked out with tracking, and anything else is created from
the default branch.

Config files listed in .worktree-config (or the built-in defaults when
that file is absent) are copied into the new worktree unless copying is
turned off.`,
		Example: `  wtm create feature/auth             # ../<repo>-feature-auth
  wtm create hotfix /tmp/hotfix       # explicit destination
  wtm create feature/auth -p review-  # ../review-<repo>-feature-auth
  wtm create wip --no-copy-configs    # skip config copying`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			branch := args[0]
			if strings.TrimSpace(branch) == "" {
				return fmt.Errorf("branch name must not be empty")
			}

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}
			runner := git.Open(root)

			// Explicit path argument wins over derivation
			var path string
			if len(args) == 2 {
				path = args[1]
				if strings.TrimSpace(path) == "" {
					return fmt.Errorf("path must not be empty")
				}
				if !filepath.IsAbs(path) {
					path = filepath.Join(config.WorkDirFromContext(ctx), path)
				}
			} else {
				pfx := prefix
				if pfx == "" {
					pfx = cfg.Prefix
				}
				path = worktree.DerivePath(branch, root, resolveBaseDir(baseDir, cfg, root), pfx)
			}

			res, err := git.CreateWorktree(ctx, runner, git.CreateOptions{
				Branch: branch,
				Path:   path,
				Force:  force,
			})
			if err != nil {
				return err
			}

			l.Debug("created worktree", "branch", branch, "path", path, "strategy", res.Strategy)

			if shouldCopyConfigs(cmd, cfg, copyConfigs, noCopyConfigs) {
				copyConfigFiles(ctx, root, path, configFiles)
			}

			out.Printf("✓ Worktree created at: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseDir, "base-dir", "d", "", "Base directory for the worktree (default: parent of repo)")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix for the derived directory name")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Proceed even if the destination path exists")
	cmd.Flags().BoolVarP(&copyConfigs, "copy-configs", "c", true, "Copy config files into the new worktree")
	cmd.Flags().BoolVar(&noCopyConfigs, "no-copy-configs", false, "Skip copying config files")
	cmd.Flags().StringVar(&configFiles, "config-files", "", "Comma-separated file list overriding .worktree-config")

	return cmd
}

// shouldCopyConfigs resolves the copy decision: --no-copy-configs wins,
// then an explicit -c, then the global config default.
func shouldCopyConfigs(cmd *cobra.Command, cfg config.Config, flagValue, noCopy bool) bool {
	if noCopy {
		return false
	}
	if cmd.Flags().Changed("copy-configs") {
		return flagValue
	}
	return cfg.CopyConfigs
}

// copyConfigFiles copies the resolved file list into the new worktree.
// Failures are reported per file and never fail the creation.
func copyConfigFiles(ctx context.Context, root, dest, override string) {
	l := log.FromContext(ctx)

	var files []string
	if override != "" {
		files = splitList(override)
	} else {
		var err error
		files, err = config.LoadFiles(root)
		if err != nil {
			l.Printf("Warning: %v\n", err)
		}
	}

	report := copier.Copy(root, dest, files)
	for _, f := range report.Files {
		switch f.Status {
		case copier.StatusFailed:
			l.Printf("Warning: copy %s: %v\n", f.Path, f.Err)
		case copier.StatusCopied:
			l.Debug("copied config file", "path", f.Path)
		}
	}
	if report.Copied > 0 || report.Failed > 0 {
		l.Printf("Copied %d config file(s), skipped %d, failed %d\n", report.Copied, report.Skipped, report.Failed)
	}
}
