package entity

import "github.com/shopspring/decimal"

// EVMRecord is one spreadsheet row of an Ethereum-family run.
// A healthy record has one cell per configured network; a degraded one only carries Error.
type EVMRecord struct {
	Address  string        `json:"address"`
	Balances []BalanceCell `json:"balances,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Degraded reports whether the whole address failed.
func (r EVMRecord) Degraded() bool {
	return r.Error != ""
}

// CosmosRecord is one spreadsheet row of a Cosmos run. Amounts are whole coin units.
type CosmosRecord struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
	Staked  decimal.Decimal `json:"staked"`
	Rewards decimal.Decimal `json:"rewards"`
}
