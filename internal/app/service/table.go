package service

import (
	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
)

const (
	addressColumnEth = "Address"
	errorColumnEth   = "error"
)

// EVMTable lays records out under "Address" plus one column per endpoint.
// A trailing "error" column is added only when some record is degraded.
func EVMTable(endpoints []entity.NetworkEndpoint, records []entity.EVMRecord) port.Table {
	withError := false
	for _, r := range records {
		if r.Degraded() {
			withError = true
			break
		}
	}

	header := make([]string, 0, len(endpoints)+2)
	header = append(header, addressColumnEth)
	for _, ep := range endpoints {
		header = append(header, ep.Definition.ColumnLabel)
	}
	if withError {
		header = append(header, errorColumnEth)
	}

	rows := make([][]any, 0, len(records))
	for _, r := range records {
		row := make([]any, len(header))
		row[0] = r.Address
		if r.Degraded() {
			row[len(header)-1] = r.Error
		} else {
			for i, cell := range r.Balances {
				if i+1 >= len(header) {
					break
				}
				row[i+1] = cell.Value()
			}
		}
		rows = append(rows, row)
	}

	return port.Table{Header: header, Rows: rows, Numeric: make([]bool, len(header))}
}

// CosmosTable lays records out under address, balance, staked, rewards.
func CosmosTable(records []entity.CosmosRecord) port.Table {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		balance, _ := r.Balance.Float64()
		staked, _ := r.Staked.Float64()
		rewards, _ := r.Rewards.Float64()
		rows = append(rows, []any{r.Address, balance, staked, rewards})
	}
	return port.Table{
		Header:  []string{"address", "balance", "staked", "rewards"},
		Rows:    rows,
		Numeric: []bool{false, true, true, true},
	}
}
