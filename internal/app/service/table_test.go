package service

import (
	"testing"

	"multichain_balance_checker/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEVMTable_NoErrorColumnWhenHealthy(t *testing.T) {
	t.Parallel()

	eps := endpoints("ethereum")
	cells := make([]entity.BalanceCell, 0, len(eps))
	for i, ep := range eps {
		if i == 0 {
			cells = append(cells, entity.AmountCell(ep.Definition.Identifier, decimal.RequireFromString("0.5")))
			continue
		}
		cells = append(cells, entity.PlaceholderCell(ep.Definition.Identifier, entity.DisabledPlaceholder))
	}

	table := EVMTable(eps, []entity.EVMRecord{{Address: "0xa", Balances: cells}})
	require.Len(t, table.Header, 9)
	assert.Equal(t, "Address", table.Header[0])
	assert.Equal(t, "ETH_arb_nova", table.Header[8])
	assert.Equal(t, 0.5, table.Rows[0][1])
	assert.Equal(t, "-", table.Rows[0][8])
	assert.Len(t, table.Numeric, 9)
}

func TestEVMTable_MixedRecordsShareColumns(t *testing.T) {
	t.Parallel()

	eps := endpoints(allNetworkIDs()...)
	cells := make([]entity.BalanceCell, len(eps))
	for i, ep := range eps {
		cells[i] = entity.AmountCell(ep.Definition.Identifier, decimal.Zero)
	}
	table := EVMTable(eps, []entity.EVMRecord{
		{Address: "0xa", Balances: cells},
		{Address: "0xb", Error: "error processing address: boom"},
	})

	require.Len(t, table.Header, 10)
	for _, row := range table.Rows {
		assert.Len(t, row, 10)
	}
	assert.Nil(t, table.Rows[0][9])
	assert.Equal(t, "error processing address: boom", table.Rows[1][9])
	assert.Nil(t, table.Rows[1][1])
}

func TestCosmosTable(t *testing.T) {
	t.Parallel()

	table := CosmosTable([]entity.CosmosRecord{{
		Address: "cosmos1a",
		Balance: decimal.RequireFromString("1.5"),
		Staked:  decimal.Zero,
		Rewards: decimal.RequireFromString("0.000001"),
	}})
	assert.Equal(t, []string{"address", "balance", "staked", "rewards"}, table.Header)
	assert.Equal(t, []any{"cosmos1a", 1.5, 0.0, 0.000001}, table.Rows[0])
	assert.Equal(t, []bool{false, true, true, true}, table.Numeric)
}
