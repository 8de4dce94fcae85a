package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
)

// EthOutputBase is the file name, without extension, of the Ethereum-family sheet.
const EthOutputBase = "ethereum_balances"

// EthCheckerConfig is the part of the configuration an Ethereum-family run reads.
type EthCheckerConfig struct {
	Endpoints []entity.NetworkEndpoint
	OutputDir string
}

// EthChecker runs one Ethereum-family batch: build clients, scan addresses, write the sheet.
// An EthChecker is single-use, like the runner it wraps.
type EthChecker struct {
	cfg            EthCheckerConfig
	clientProvider port.BlockchainClientProvider
	sink           port.ResultSink
	logger         port.Logger
	metrics        port.MetricsRecorder

	aggregator *EVMAggregator
	runner     *BatchRunner[entity.EVMRecord]
}

// NewEthChecker creates a new EthChecker. progress may be nil.
func NewEthChecker(
	cfg EthCheckerConfig,
	cp port.BlockchainClientProvider,
	sink port.ResultSink,
	l port.Logger,
	m port.MetricsRecorder,
	progress port.ProgressFunc,
) *EthChecker {
	c := &EthChecker{
		cfg:            cfg,
		clientProvider: cp,
		sink:           sink,
		logger:         l,
		metrics:        m,
	}
	c.runner = NewBatchRunner(func(ctx context.Context, address string) entity.EVMRecord {
		l.Debug("Checking address", "checker", CheckerEth, "address", address)
		return c.aggregator.Check(ctx, address)
	}, progress)
	return c
}

// Stop interrupts the batch before the next address.
func (c *EthChecker) Stop() { c.runner.Stop() }

// State returns the lifecycle state of the batch.
func (c *EthChecker) State() entity.RunState { return c.runner.State() }

// Run scans addresses and writes the sheet, also after an interruption.
// With every network disabled it returns entity.ErrNoNetworkSelected before any call is made.
// A sink failure is returned together with the records.
func (c *EthChecker) Run(ctx context.Context, addresses []string) (BatchResult[entity.EVMRecord], error) {
	if err := c.runner.startable(); err != nil {
		return BatchResult[entity.EVMRecord]{}, err
	}
	if !entity.AnyEnabled(c.cfg.Endpoints) {
		return BatchResult[entity.EVMRecord]{}, entity.ErrNoNetworkSelected
	}
	addrs := NormalizeAddresses(addresses)
	if len(addrs) == 0 {
		return BatchResult[entity.EVMRecord]{}, entity.ErrNoAddresses
	}

	clients := make(map[string]port.BlockchainClient, len(c.cfg.Endpoints))
	defer func() {
		for _, client := range clients {
			client.Close()
		}
	}()
	for _, ep := range c.cfg.Endpoints {
		if !ep.Enabled {
			continue
		}
		client, err := c.clientProvider.GetClient(ctx, ep)
		if err != nil {
			return BatchResult[entity.EVMRecord]{}, fmt.Errorf("failed to get client for %s: %w", ep.Definition.Identifier, err)
		}
		clients[ep.Definition.Identifier] = client
	}
	c.aggregator = NewEVMAggregator(c.cfg.Endpoints, clients, c.logger, c.metrics)

	c.logger.Info("Starting batch", "checker", CheckerEth, "addresses", len(addrs), "networks", len(clients))
	start := time.Now()
	result, err := c.runner.Run(ctx, addrs)
	if err != nil {
		return result, err
	}
	c.metrics.ObserveRun(CheckerEth, c.runner.State(), time.Since(start))

	result.OutputPath = filepath.Join(c.cfg.OutputDir, EthOutputBase+c.sink.Extension())
	if err := c.sink.Write(result.OutputPath, EVMTable(c.cfg.Endpoints, result.Records)); err != nil {
		c.logger.Error("Failed to write results", "checker", CheckerEth, "path", result.OutputPath, "error", err)
		return result, fmt.Errorf("failed to write results to %s: %w", result.OutputPath, err)
	}
	c.logger.Info("Batch finished", "checker", CheckerEth, "state", c.runner.State().String(),
		"processed", result.Processed, "total", result.Total, "path", result.OutputPath)
	return result, nil
}
