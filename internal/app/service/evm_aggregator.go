package service

import (
	"context"
	"fmt"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
	"multichain_balance_checker/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const (
	// CheckerEth labels logs and metrics of the Ethereum-family run.
	CheckerEth = "eth"

	fetchErrorPrefix   = "error fetching balance: "
	processErrorPrefix = "error processing address: "
)

// EVMAggregator builds one EVMRecord per address by querying every enabled network at once.
type EVMAggregator struct {
	endpoints []entity.NetworkEndpoint
	clients   map[string]port.BlockchainClient
	logger    port.Logger
	metrics   port.MetricsRecorder
}

// NewEVMAggregator creates an aggregator over endpoints, in their order.
// clients holds one client per enabled endpoint, keyed by network identifier.
func NewEVMAggregator(
	endpoints []entity.NetworkEndpoint,
	clients map[string]port.BlockchainClient,
	l port.Logger,
	m port.MetricsRecorder,
) *EVMAggregator {
	return &EVMAggregator{
		endpoints: endpoints,
		clients:   clients,
		logger:    l,
		metrics:   m,
	}
}

// Check returns a record with one cell per endpoint. Disabled networks get "-", failed lookups
// an error placeholder. All lookups are awaited; none cancels another.
// A panic inside a lookup degrades the whole record instead of crashing the batch.
func (a *EVMAggregator) Check(ctx context.Context, address string) entity.EVMRecord {
	cells := make([]entity.BalanceCell, len(a.endpoints))

	var g errgroup.Group
	for i, ep := range a.endpoints {
		netID := ep.Definition.Identifier
		if !ep.Enabled {
			cells[i] = entity.PlaceholderCell(netID, entity.DisabledPlaceholder)
			a.metrics.ObserveLookup(CheckerEth, netID, port.OutcomeDisabled)
			continue
		}
		client, ok := a.clients[netID]
		if !ok {
			cells[i] = entity.PlaceholderCell(netID, fetchErrorPrefix+"no client for "+netID)
			a.metrics.ObserveLookup(CheckerEth, netID, port.OutcomeError)
			continue
		}

		i, def := i, ep.Definition
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic while querying %s: %v", def.Identifier, r)
				}
			}()

			wei, fetchErr := client.GetNativeBalance(ctx, address)
			if fetchErr != nil {
				a.logger.Warn("Failed to fetch native balance", "network", def.Identifier, "address", address, "error", fetchErr)
				a.metrics.ObserveLookup(CheckerEth, def.Identifier, port.OutcomeError)
				cells[i] = entity.PlaceholderCell(def.Identifier, fetchErrorPrefix+fetchErr.Error())
				return nil
			}
			a.metrics.ObserveLookup(CheckerEth, def.Identifier, port.OutcomeOK)
			cells[i] = entity.AmountCell(def.Identifier, utils.WeiToDisplay(wei, def.Decimals))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Error("Address processing failed", "address", address, "error", err)
		a.metrics.ObserveAddress(CheckerEth, true)
		return entity.EVMRecord{Address: address, Error: processErrorPrefix + err.Error()}
	}
	a.metrics.ObserveAddress(CheckerEth, false)
	return entity.EVMRecord{Address: address, Balances: cells}
}
