package main

import (
	"io"
	"os"

	"multichain_balance_checker/internal/infrastructure/configloader"
	"multichain_balance_checker/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 2
	exitAborted     = 130
)

const defaultConfigPath = "config.yml"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout))
}

// app holds flag values and the streams commands read from and write to.
type app struct {
	configPath string
	logLevel   string

	stdin  io.Reader
	stdout io.Writer

	exitCode int
}

func execute(args []string, stdin io.Reader, stdout io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		return exitFailure
	}
	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "balance_checker",
		Short:         "Check native balances of address lists on EVM networks and Cosmos Hub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "Path to the YAML configuration file")
	root.PersistentFlags().StringVarP(&a.logLevel, "log-level", "", "", "Log level (debug, info, warn, error); overrides the configuration")

	root.AddCommand(a.ethCmd(), a.atomCmd(), a.configCmd())
	return root
}

// loadConfig reads the configuration and sets up logging from it.
// The returned zap logger must be synced by the caller.
func (a *app) loadConfig() (*configloader.Config, *zap.Logger, error) {
	cfg, err := configloader.Load(a.configPath)
	if err != nil {
		return nil, nil, err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	zapLogger, err := logger.Init(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Configuration loaded", "path", a.configPath)
	return cfg, zapLogger, nil
}
