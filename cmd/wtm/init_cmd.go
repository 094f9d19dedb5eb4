package main

import (
	"github.com/spf13/cobra"

	"github.com/joel-eq/worktree-manager/internal/config"
	"github.com/joel-eq/worktree-manager/internal/output"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write a global config template",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Write a commented global config template.

The file goes to ~/.config/wtm/config.toml (or the --config path) and
documents the available settings: base_dir, prefix and copy_configs.
An existing config is never overwritten unless -f is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(configPath, force)
			if err != nil {
				return err
			}

			output.FromContext(cmd.Context()).Printf("Config written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}
