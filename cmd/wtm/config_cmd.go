package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/log"
	"github.com/joel-eq/worktree-manager/internal/output"
	"github.com/joel-eq/worktree-manager/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	var (
		list   bool
		add    string
		remove string
		reset  bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage the per-repository config file list",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Manage .worktree-config, the list of files copied into new worktrees.

The file lives at the repository root, one relative path per line, with
#-prefixed comment lines. While it does not exist the built-in default
list applies; the first --add writes it out. Without a flag the current
list is shown.`,
		Example: `  wtm config                      # show the list
  wtm config --add .env.staging   # add an entry
  wtm config --remove .env.test   # drop an entry
  wtm config --reset              # restore the built-in defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := repoRoot(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			switch {
			case flags.Changed("add"):
				return runConfigAdd(ctx, root, add)
			case flags.Changed("remove"):
				return runConfigRemove(ctx, root, remove)
			case reset:
				return runConfigReset(ctx, root)
			default:
				return runConfigList(ctx, root)
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Show the config file list (default)")
	cmd.Flags().StringVar(&add, "add", "", "Add a file to the list")
	cmd.Flags().StringVar(&remove, "remove", "", "Remove a file from the list")
	cmd.Flags().BoolVar(&reset, "reset", false, "Restore the built-in default list")
	cmd.MarkFlagsMutuallyExclusive("list", "add", "remove", "reset")

	return cmd
}

func runConfigList(ctx context.Context, root string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	files, err := config.LoadFiles(root)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}

	out.Println("Config files copied into new worktrees:")
	for _, f := range files {
		marker := styles.SuccessStyle.Render("✓")
		if _, err := os.Stat(filepath.Join(root, f)); err != nil {
			marker = styles.ErrorStyle.Render("✗")
		}
		out.Printf("  %s %s\n", marker, f)
	}
	return nil
}

func runConfigAdd(ctx context.Context, root, entry string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("--add requires a non-empty file path")
	}

	files, err := config.LoadFiles(root)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}

	if slices.Contains(files, entry) {
		l.Printf("Warning: %s is already in the config file list\n", entry)
		return nil
	}

	files = append(files, entry)
	if err := config.SaveFiles(root, files); err != nil {
		return err
	}

	out.Printf("Added: %s\n", entry)
	return nil
}

func runConfigRemove(ctx context.Context, root, entry string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("--remove requires a non-empty file path")
	}

	files, err := config.LoadFiles(root)
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}

	files, removed := config.RemoveFile(files, entry)
	if !removed {
		l.Printf("Warning: %s is not in the config file list\n", entry)
		return nil
	}

	if err := config.SaveFiles(root, files); err != nil {
		return err
	}

	out.Printf("Removed: %s\n", entry)
	return nil
}

func runConfigReset(ctx context.Context, root string) error {
	out := output.FromContext(ctx)

	if err := config.SaveFiles(root, config.DefaultFiles); err != nil {
		return err
	}

	out.Printf("Reset to %d default entries\n", len(config.DefaultFiles))
	return nil
}
