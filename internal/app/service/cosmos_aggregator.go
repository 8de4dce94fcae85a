package service

import (
	"context"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckerAtom labels logs and metrics of the Cosmos run.
const CheckerAtom = "atom"

// CosmosAggregator builds one CosmosRecord per address with three sequential lookups.
type CosmosAggregator struct {
	client  port.CosmosClient
	logger  port.Logger
	metrics port.MetricsRecorder
}

// NewCosmosAggregator creates a new CosmosAggregator.
func NewCosmosAggregator(c port.CosmosClient, l port.Logger, m port.MetricsRecorder) *CosmosAggregator {
	return &CosmosAggregator{client: c, logger: l, metrics: m}
}

// Check fetches balance, staked and rewards. Each failure becomes zero on its own.
func (a *CosmosAggregator) Check(ctx context.Context, address string) entity.CosmosRecord {
	record := entity.CosmosRecord{
		Address: address,
		Balance: a.lookup(ctx, "balance", address, a.client.GetBalance),
		Staked:  a.lookup(ctx, "staked", address, a.client.GetStaked),
		Rewards: a.lookup(ctx, "rewards", address, a.client.GetRewards),
	}
	a.metrics.ObserveAddress(CheckerAtom, false)
	return record
}

func (a *CosmosAggregator) lookup(
	ctx context.Context,
	field, address string,
	fetch func(context.Context, string) (decimal.Decimal, error),
) decimal.Decimal {
	amount, err := fetch(ctx, address)
	if err != nil {
		a.logger.Warn("Cosmos lookup failed, using zero", "field", field, "address", address, "error", err)
		a.metrics.ObserveLookup(CheckerAtom, field, port.OutcomeError)
		return decimal.Zero
	}
	a.metrics.ObserveLookup(CheckerAtom, field, port.OutcomeOK)
	return amount
}
