package client

import (
	"context"
	"fmt"
	"math/big"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EVMClient implements the port.BlockchainClient interface for EVM-compatible chains.
type EVMClient struct {
	ethClient *ethclient.Client
	netDef    entity.NetworkDefinition
	rpcURL    string
}

// NewEVMClient creates a new EVM client for the given network definition and RPC URL.
// For HTTP endpoints no request is made here; the first balance call opens the connection.
func NewEVMClient(ctx context.Context, netDef entity.NetworkDefinition, rpcURL string) (port.BlockchainClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("empty RPC URL for network %s", netDef.Identifier)
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	return &EVMClient{ethClient: client, netDef: netDef, rpcURL: rpcURL}, nil
}

// GetNativeBalance calls eth_getBalance at the latest block.
// There is no per-call timeout: the caller's context is the only bound.
func (c *EVMClient) GetNativeBalance(ctx context.Context, walletAddress string) (*big.Int, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("invalid address %q", walletAddress)
	}
	balance, err := c.ethClient.BalanceAt(ctx, common.HexToAddress(walletAddress), nil)
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance on %s: %w", c.netDef.Identifier, err)
	}
	return balance, nil
}

// Definition returns the network definition for this client.
func (c *EVMClient) Definition() entity.NetworkDefinition {
	return c.netDef
}

// Close shuts the RPC connection down.
func (c *EVMClient) Close() {
	c.ethClient.Close()
}

// unreachableClient stands in for an endpoint whose client could not be built.
// Every lookup returns the construction error so the failure shows up per address.
type unreachableClient struct {
	netDef entity.NetworkDefinition
	err    error
}

func (c *unreachableClient) GetNativeBalance(context.Context, string) (*big.Int, error) {
	return nil, c.err
}

func (c *unreachableClient) Definition() entity.NetworkDefinition {
	return c.netDef
}

func (c *unreachableClient) Close() {}
