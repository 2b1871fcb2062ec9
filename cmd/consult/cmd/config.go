package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sant0-9/consult/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(root)
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(path)
			if err != nil {
				return err
			}

			state := "not found, using defaults"
			if _, err := os.Stat(path); err == nil {
				state = "loaded"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config:   %s (%s)\n", path, state)
			fmt.Fprintf(out, "Provider: %s\n", cfg.Provider)
			fmt.Fprintf(out, "Model:    %s\n", cfg.Model)
			fmt.Fprintf(out, "Base URL: %s\n", cfg.BaseURL)
			fmt.Fprintf(out, "API Key:  %s\n", cfg.MaskedAPIKey())
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd(root))

	return cmd
}

func newConfigInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(root)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.DefaultConfig().SaveTo(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func configPath(root *rootOptions) (string, error) {
	if root.cfgFile != "" {
		return root.cfgFile, nil
	}
	return config.ConfigPath()
}
