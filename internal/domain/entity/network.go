package entity

// NetworkDefinition holds the static description of an EVM-compatible network.
// This structure is defined at the domain level to be used across application and infrastructure layers.
type NetworkDefinition struct {
	ChainID       uint64 `json:"chainId" yaml:"chainId"`
	Name          string `json:"name" yaml:"name"`
	Identifier    string `json:"identifier" yaml:"identifier"` // e.g. "ethereum", "arbitrum_nova"
	NativeSymbol  string `json:"nativeSymbol" yaml:"nativeSymbol"`
	Decimals      int32  `json:"decimals" yaml:"decimals"`
	ColumnLabel   string `json:"columnLabel" yaml:"columnLabel"` // header of the spreadsheet column
	DefaultRPCURL string `json:"defaultRpcUrl" yaml:"defaultRpcUrl"`
}

// NetworkEndpoint is a configured network for one batch run.
type NetworkEndpoint struct {
	Definition NetworkDefinition
	Enabled    bool
	RPCURL     string
}

// AnyEnabled reports whether at least one endpoint is enabled.
func AnyEnabled(endpoints []NetworkEndpoint) bool {
	for _, ep := range endpoints {
		if ep.Enabled {
			return true
		}
	}
	return false
}
