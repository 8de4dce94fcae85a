package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/app/service"
	"multichain_balance_checker/internal/domain/entity"
	"multichain_balance_checker/internal/infrastructure/configloader"
	"multichain_balance_checker/internal/infrastructure/httpclient"
	"multichain_balance_checker/internal/infrastructure/metrics"
	"multichain_balance_checker/internal/infrastructure/network/client"
	"multichain_balance_checker/internal/infrastructure/sheetwriter"
	"multichain_balance_checker/internal/infrastructure/walletloader"
	"multichain_balance_checker/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// checker is the part of EthChecker and AtomChecker the CLI drives.
type checker[R any] interface {
	Run(ctx context.Context, addresses []string) (service.BatchResult[R], error)
	Stop()
}

func (a *app) ethCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "eth",
		Short: "Check ETH balances on every enabled EVM network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := a.loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = zapLogger.Sync() }()

			addresses, err := walletloader.NewAddressLoader(a.stdin, logger.Info).Load(input)
			if err != nil {
				return err
			}
			sink, err := sheetwriter.New(cfg.Output.Format)
			if err != nil {
				return err
			}
			recorder := metrics.NewRecorder()

			eth := service.NewEthChecker(
				service.EthCheckerConfig{Endpoints: cfg.Endpoints(), OutputDir: cfg.Output.Dir},
				client.NewEVMClientProvider(logger.Info, logger.Error),
				sink,
				logger.NewSlogAdapter("checker", service.CheckerEth),
				recorder,
				progressLogger(service.CheckerEth),
			)
			a.exitCode, err = runUntilDone[entity.EVMRecord](cmd.Context(), eth, addresses)
			exportMetrics(cfg, recorder)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", walletloader.StdinPath, `File with one address per line ("-" for stdin)`)
	return cmd
}

func (a *app) atomCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "atom",
		Short: "Check ATOM balance, staked amount and rewards on Cosmos Hub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := a.loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = zapLogger.Sync() }()

			addresses, err := walletloader.NewAddressLoader(a.stdin, logger.Info).Load(input)
			if err != nil {
				return err
			}
			sink, err := sheetwriter.New(cfg.Output.Format)
			if err != nil {
				return err
			}
			recorder := metrics.NewRecorder()

			atom := service.NewAtomChecker(
				service.AtomCheckerConfig{OutputDir: cfg.Output.Dir},
				httpclient.NewCosmosClient(cfg.Cosmos.RESTURL, cfg.Cosmos.Denom, cfg.Cosmos.Exponent, zapLogger),
				sink,
				logger.NewSlogAdapter("checker", service.CheckerAtom),
				recorder,
				progressLogger(service.CheckerAtom),
			)
			a.exitCode, err = runUntilDone[entity.CosmosRecord](cmd.Context(), atom, addresses)
			exportMetrics(cfg, recorder)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", walletloader.StdinPath, `File with one address per line ("-" for stdin)`)
	return cmd
}

// runUntilDone runs the batch in a background goroutine. The first SIGINT/SIGTERM asks it to stop
// after the current address; the second exits the process at once.
func runUntilDone[R any](ctx context.Context, c checker[R], addresses []string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	type outcome struct {
		result service.BatchResult[R]
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := c.Run(ctx, addresses)
		done <- outcome{result: res, err: err}
	}()

	stopping := false
	for {
		select {
		case sig := <-sigCh:
			if stopping {
				logger.Error("Second signal received, aborting", "signal", sig.String())
				os.Exit(exitAborted)
			}
			stopping = true
			logger.Warn("Stop requested, finishing the current address. Send the signal again to abort.", "signal", sig.String())
			c.Stop()
		case out := <-done:
			return reportOutcome(out.result.Interrupted, out.result.Processed, out.result.Total, out.result.OutputPath, out.err)
		}
	}
}

func reportOutcome(interrupted bool, processed, total int, path string, err error) (int, error) {
	switch {
	case err != nil:
		if path != "" {
			logger.Error("Batch finished but results were not saved", "processed", processed, "total", total)
		}
		return exitFailure, err
	case interrupted:
		logger.Warn("Batch interrupted", "processed", processed, "total", total, "output", path)
		return exitInterrupted, nil
	default:
		logger.Info("Batch completed", "processed", processed, "total", total, "output", path)
		return exitOK, nil
	}
}

func progressLogger(checkerName string) port.ProgressFunc {
	return func(percent int) {
		logger.Info("Progress", "checker", checkerName, "percent", percent)
	}
}

func exportMetrics(cfg *configloader.Config, recorder *metrics.Recorder) {
	if cfg.Metrics.Textfile == "" {
		return
	}
	if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logger.Warn("Failed to export metrics", "error", err)
		return
	}
	logger.Debug("Metrics exported", "path", cfg.Metrics.Textfile)
}
