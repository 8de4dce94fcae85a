package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"multichain_balance_checker/internal/domain/entity"
	networkdefinition "multichain_balance_checker/internal/infrastructure/network/definition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	richAddress  = "0x00000000000000000000000000000000000000b0"
	emptyAddress = "0x00000000000000000000000000000000000000a0"
	brokenAddr   = "0x00000000000000000000000000000000000000e0"
)

type rpcReq struct {
	JSONRPC string `json:"jsonrpc"`
	ID      json.RawMessage
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// newFakeNode serves eth_getBalance: 1 ether for richAddress, 0 for the others and a JSON-RPC
// error for brokenAddr.
func newFakeNode(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req rpcReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if req.Method != "eth_getBalance" || len(req.Params) != 2 {
			resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		addr, _ := req.Params[0].(string)
		switch strings.ToLower(addr) {
		case richAddress:
			resp["result"] = "0xde0b6b3a7640000"
		case brokenAddr:
			resp["error"] = map[string]any{"code": -32000, "message": "header not found"}
		default:
			resp["result"] = "0x0"
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEVMClient_GetNativeBalance(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newFakeNode(t, &calls)

	c, err := NewEVMClient(context.Background(), networkdefinition.Base, srv.URL)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "base", c.Definition().Identifier)

	got, err := c.GetNativeBalance(context.Background(), richAddress)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", got.String())

	got, err = c.GetNativeBalance(context.Background(), emptyAddress)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	_, err = c.GetNativeBalance(context.Background(), brokenAddr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header not found")
}

func TestEVMClient_InvalidAddressNeverReachesNode(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newFakeNode(t, &calls)

	c, err := NewEVMClient(context.Background(), networkdefinition.Ethereum, srv.URL)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetNativeBalance(context.Background(), "cosmos1notanevmaddress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid address")
	assert.Zero(t, calls.Load())
}

func TestEVMClient_HTTPErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c, err := NewEVMClient(context.Background(), networkdefinition.Linea, srv.URL)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetNativeBalance(context.Background(), richAddress)
	require.Error(t, err)
}

func TestEVMClientProvider_GetClient(t *testing.T) {
	t.Parallel()

	nop := func(string, ...any) {}
	provider := NewEVMClientProvider(nop, nop)

	var calls atomic.Int32
	srv := newFakeNode(t, &calls)

	_, err := provider.GetClient(context.Background(), entity.NetworkEndpoint{
		Definition: networkdefinition.Scroll, Enabled: false, RPCURL: srv.URL,
	})
	require.Error(t, err)

	ok, err := provider.GetClient(context.Background(), entity.NetworkEndpoint{
		Definition: networkdefinition.Scroll, Enabled: true, RPCURL: srv.URL,
	})
	require.NoError(t, err)
	defer ok.Close()
	bal, err := ok.GetNativeBalance(context.Background(), richAddress)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", bal.String())

	// An unusable URL yields a client that fails per lookup instead of failing the batch.
	broken, err := provider.GetClient(context.Background(), entity.NetworkEndpoint{
		Definition: networkdefinition.ZkSync, Enabled: true, RPCURL: "",
	})
	require.NoError(t, err)
	defer broken.Close()
	assert.Equal(t, "zksync", broken.Definition().Identifier)
	_, err = broken.GetNativeBalance(context.Background(), richAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create EVM client for zksync")
}
