package client

import (
	"context"
	"fmt"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
)

// evmClientProvider implements the port.BlockchainClientProvider interface.
type evmClientProvider struct {
	loggerInfo  func(msg string, args ...any)
	loggerError func(msg string, args ...any)
}

// NewEVMClientProvider creates a new EVMClientProvider.
func NewEVMClientProvider(
	loggerInfo func(msg string, args ...any),
	loggerError func(msg string, args ...any),
) port.BlockchainClientProvider {
	return &evmClientProvider{
		loggerInfo:  loggerInfo,
		loggerError: loggerError,
	}
}

// GetClient builds a fresh client for an enabled endpoint. Nothing is cached: a batch owns its
// clients and closes them when it ends.
//
// A client that cannot be built is not an error for the batch. The provider returns a client
// that fails every lookup with the construction error, so the column degrades per address.
func (p *evmClientProvider) GetClient(ctx context.Context, endpoint entity.NetworkEndpoint) (port.BlockchainClient, error) {
	netDef := endpoint.Definition
	if !endpoint.Enabled {
		return nil, fmt.Errorf("network %s is disabled", netDef.Identifier)
	}

	p.loggerInfo("Creating new EVM client", "network", netDef.Identifier, "rpc", endpoint.RPCURL)
	newClient, err := NewEVMClient(ctx, netDef, endpoint.RPCURL)
	if err != nil {
		p.loggerError("Failed to create EVM client", "network", netDef.Identifier, "error", err)
		return &unreachableClient{
			netDef: netDef,
			err:    fmt.Errorf("failed to create EVM client for %s: %w", netDef.Identifier, err),
		}, nil
	}
	return newClient, nil
}
