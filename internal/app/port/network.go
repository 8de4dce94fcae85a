package port

import (
	"context"
	"math/big"

	"multichain_balance_checker/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BlockchainClient defines the interface for reading native balances on one EVM network.
type BlockchainClient interface {
	// GetNativeBalance fetches the native currency balance in base units (wei).
	GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error)

	// Definition returns the network definition associated with this client.
	Definition() entity.NetworkDefinition

	// Close releases the underlying connection.
	Close()
}

// BlockchainClientProvider builds clients for configured endpoints.
// Clients are built per batch and never shared across runs.
type BlockchainClientProvider interface {
	GetClient(ctx context.Context, endpoint entity.NetworkEndpoint) (BlockchainClient, error)
}

// CosmosClient reads bank, staking and distribution state of a Cosmos account.
// Amounts are returned in whole coin units.
type CosmosClient interface {
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	GetStaked(ctx context.Context, address string) (decimal.Decimal, error)
	GetRewards(ctx context.Context, address string) (decimal.Decimal, error)
}
