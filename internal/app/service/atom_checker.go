package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
)

// AtomOutputBase is the file name, without extension, of the Cosmos sheet.
const AtomOutputBase = "atom_balances"

// AtomCheckerConfig is the part of the configuration a Cosmos run reads.
type AtomCheckerConfig struct {
	OutputDir string
}

// AtomChecker runs one Cosmos batch against a single REST gateway.
type AtomChecker struct {
	cfg     AtomCheckerConfig
	sink    port.ResultSink
	logger  port.Logger
	metrics port.MetricsRecorder
	runner  *BatchRunner[entity.CosmosRecord]
}

// NewAtomChecker creates a new AtomChecker. progress may be nil.
func NewAtomChecker(
	cfg AtomCheckerConfig,
	client port.CosmosClient,
	sink port.ResultSink,
	l port.Logger,
	m port.MetricsRecorder,
	progress port.ProgressFunc,
) *AtomChecker {
	agg := NewCosmosAggregator(client, l, m)
	return &AtomChecker{
		cfg:     cfg,
		sink:    sink,
		logger:  l,
		metrics: m,
		runner: NewBatchRunner(func(ctx context.Context, address string) entity.CosmosRecord {
			l.Debug("Checking address", "checker", CheckerAtom, "address", address)
			return agg.Check(ctx, address)
		}, progress),
	}
}

// Stop interrupts the batch before the next address.
func (c *AtomChecker) Stop() { c.runner.Stop() }

// State returns the lifecycle state of the batch.
func (c *AtomChecker) State() entity.RunState { return c.runner.State() }

// Run scans addresses and writes the sheet, also after an interruption.
// A sink failure is returned together with the records.
func (c *AtomChecker) Run(ctx context.Context, addresses []string) (BatchResult[entity.CosmosRecord], error) {
	c.logger.Info("Starting batch", "checker", CheckerAtom, "addresses", len(NormalizeAddresses(addresses)))
	start := time.Now()
	result, err := c.runner.Run(ctx, addresses)
	if err != nil {
		return result, err
	}
	c.metrics.ObserveRun(CheckerAtom, c.runner.State(), time.Since(start))

	result.OutputPath = filepath.Join(c.cfg.OutputDir, AtomOutputBase+c.sink.Extension())
	if err := c.sink.Write(result.OutputPath, CosmosTable(result.Records)); err != nil {
		c.logger.Error("Failed to write results", "checker", CheckerAtom, "path", result.OutputPath, "error", err)
		return result, fmt.Errorf("failed to write results to %s: %w", result.OutputPath, err)
	}
	c.logger.Info("Batch finished", "checker", CheckerAtom, "state", c.runner.State().String(),
		"processed", result.Processed, "total", result.Total, "path", result.OutputPath)
	return result, nil
}
