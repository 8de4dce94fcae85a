package httpclient

// Coin is a Cosmos SDK coin or dec-coin as rendered by the REST gateway.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// bankBalancesResponse is GET /cosmos/bank/v1beta1/balances/{address}.
type bankBalancesResponse struct {
	Balances []Coin `json:"balances"`
}

// delegationResponse is one entry of delegation_responses.
type delegationResponse struct {
	Delegation struct {
		DelegatorAddress string `json:"delegator_address"`
		ValidatorAddress string `json:"validator_address"`
		Shares           string `json:"shares"`
	} `json:"delegation"`
	Balance Coin `json:"balance"`
}

// delegationsResponse is GET /cosmos/staking/v1beta1/delegations/{address}.
type delegationsResponse struct {
	DelegationResponses []delegationResponse `json:"delegation_responses"`
}

// rewardsResponse is GET /cosmos/distribution/v1beta1/delegators/{address}/rewards.
type rewardsResponse struct {
	Rewards []struct {
		ValidatorAddress string `json:"validator_address"`
		Reward           []Coin `json:"reward"`
	} `json:"rewards"`
	Total []Coin `json:"total"`
}
