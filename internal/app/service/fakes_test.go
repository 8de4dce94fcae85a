package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
	networkdefinition "multichain_balance_checker/internal/infrastructure/network/definition"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// fakeMetrics counts observations by key.
type fakeMetrics struct {
	mu      sync.Mutex
	lookups map[string]int
	addrs   map[bool]int
	runs    []entity.RunState
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{lookups: map[string]int{}, addrs: map[bool]int{}}
}

func (m *fakeMetrics) ObserveLookup(checker, network, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[checker+"/"+network+"/"+outcome]++
}

func (m *fakeMetrics) ObserveAddress(_ string, degraded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addrs[degraded]++
}

func (m *fakeMetrics) ObserveRun(_ string, state entity.RunState, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, state)
}

// fakeEVMClient answers from a fixed map. Unknown addresses hold zero.
type fakeEVMClient struct {
	def      entity.NetworkDefinition
	balances map[string]*big.Int
	err      error
	panicMsg string
	calls    *atomic.Int32
	closed   atomic.Bool
}

func (c *fakeEVMClient) GetNativeBalance(_ context.Context, address string) (*big.Int, error) {
	if c.calls != nil {
		c.calls.Add(1)
	}
	if c.panicMsg != "" {
		panic(c.panicMsg)
	}
	if c.err != nil {
		return nil, c.err
	}
	if b, ok := c.balances[address]; ok {
		return b, nil
	}
	return big.NewInt(0), nil
}

func (c *fakeEVMClient) Definition() entity.NetworkDefinition { return c.def }

func (c *fakeEVMClient) Close() { c.closed.Store(true) }

// fakeProvider hands out prepared clients and counts calls across all of them.
type fakeProvider struct {
	mu      sync.Mutex
	clients map[string]*fakeEVMClient
	calls   atomic.Int32
	built   []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{clients: map[string]*fakeEVMClient{}}
}

func (p *fakeProvider) with(id string, c *fakeEVMClient) *fakeProvider {
	c.def = networkdefinition.MustLookup(id)
	c.calls = &p.calls
	p.clients[id] = c
	return p
}

func (p *fakeProvider) GetClient(_ context.Context, ep entity.NetworkEndpoint) (port.BlockchainClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !ep.Enabled {
		return nil, errors.New("disabled")
	}
	p.built = append(p.built, ep.Definition.Identifier)
	c, ok := p.clients[ep.Definition.Identifier]
	if !ok {
		c = &fakeEVMClient{def: ep.Definition, calls: &p.calls}
		p.clients[ep.Definition.Identifier] = c
	}
	return c, nil
}

// endpoints returns all eight networks with only the given ones enabled.
func endpoints(enabled ...string) []entity.NetworkEndpoint {
	on := map[string]bool{}
	for _, id := range enabled {
		on[id] = true
	}
	out := make([]entity.NetworkEndpoint, 0, 8)
	for _, def := range networkdefinition.All() {
		out = append(out, entity.NetworkEndpoint{Definition: def, Enabled: on[def.Identifier], RPCURL: "http://" + def.Identifier})
	}
	return out
}

func allNetworkIDs() []string {
	return networkdefinition.Identifiers()
}

// fakeCosmosClient returns fixed amounts or errors per field.
type fakeCosmosClient struct {
	balance, staked, rewards          decimal.Decimal
	balanceErr, stakedErr, rewardsErr error
	calls                             atomic.Int32
}

func (c *fakeCosmosClient) GetBalance(context.Context, string) (decimal.Decimal, error) {
	c.calls.Add(1)
	return c.balance, c.balanceErr
}

func (c *fakeCosmosClient) GetStaked(context.Context, string) (decimal.Decimal, error) {
	c.calls.Add(1)
	return c.staked, c.stakedErr
}

func (c *fakeCosmosClient) GetRewards(context.Context, string) (decimal.Decimal, error) {
	c.calls.Add(1)
	return c.rewards, c.rewardsErr
}

// memorySink keeps the last written table.
type memorySink struct {
	path  string
	table port.Table
	err   error
	calls int
}

func (s *memorySink) Write(path string, table port.Table) error {
	s.calls++
	s.path = path
	s.table = table
	return s.err
}

func (s *memorySink) Extension() string { return ".xlsx" }

// progressLog records progress ticks.
type progressLog struct {
	mu    sync.Mutex
	ticks []int
}

func (p *progressLog) record(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ticks = append(p.ticks, percent)
}

func (p *progressLog) values() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.ticks...)
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.Ether))
}
