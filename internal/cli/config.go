package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/internal/config"
	"github.com/gg582/hanjamo/internal/logging"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the jamo config file",
	}
	cmd.AddCommand(newConfigInitCommand(a))
	return cmd
}

func newConfigInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("config: %w", err)
			}

			cfg := a.cfg
			cfg.Encoding = a.encoding
			cfg.Socket = a.socket
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			a.logger.Info("wrote config", logging.FieldPath, path)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
