package main

import (
	"fmt"
	"os"

	"multichain_balance_checker/internal/infrastructure/configloader"
	"multichain_balance_checker/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration with every network enabled",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := logger.Init(a.logLevel); err != nil {
				return err
			}
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", a.configPath)
			}
			if err := configloader.Save(a.configPath, configloader.Default()); err != nil {
				return err
			}
			logger.Info("Default configuration written", "path", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration, environment overrides applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := a.loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = zapLogger.Sync() }()

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
