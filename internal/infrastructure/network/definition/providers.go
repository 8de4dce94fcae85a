package networkdefinition

import (
	"fmt"
	"strings"

	"multichain_balance_checker/internal/domain/entity"
)

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = entity.NetworkDefinition{
		ChainID:       1,
		Name:          "Ethereum Mainnet",
		Identifier:    "ethereum",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH",
		DefaultRPCURL: "https://ethereum-rpc.publicnode.com",
	}
	Arbitrum = entity.NetworkDefinition{
		ChainID:       42161,
		Name:          "Arbitrum One",
		Identifier:    "arbitrum",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_arb",
		DefaultRPCURL: "https://arb1.arbitrum.io/rpc",
	}
	Optimism = entity.NetworkDefinition{
		ChainID:       10,
		Name:          "OP Mainnet",
		Identifier:    "optimism",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_op",
		DefaultRPCURL: "https://optimism.publicnode.com",
	}
	Linea = entity.NetworkDefinition{
		ChainID:       59144,
		Name:          "Linea Mainnet",
		Identifier:    "linea",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_linea",
		DefaultRPCURL: "https://rpc.linea.build",
	}
	ZkSync = entity.NetworkDefinition{ // zkSync Era
		ChainID:       324,
		Name:          "zkSync Era Mainnet",
		Identifier:    "zksync",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_zksync",
		DefaultRPCURL: "https://mainnet.era.zksync.io",
	}
	Scroll = entity.NetworkDefinition{
		ChainID:       534352,
		Name:          "Scroll",
		Identifier:    "scroll",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_scroll",
		DefaultRPCURL: "https://rpc.scroll.io",
	}
	Base = entity.NetworkDefinition{
		ChainID:       8453,
		Name:          "Base Mainnet",
		Identifier:    "base",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_base",
		DefaultRPCURL: "https://base.publicnode.com",
	}
	ArbitrumNova = entity.NetworkDefinition{
		ChainID:       42170,
		Name:          "Arbitrum Nova",
		Identifier:    "arbitrum_nova",
		NativeSymbol:  "ETH",
		Decimals:      18,
		ColumnLabel:   "ETH_arb_nova",
		DefaultRPCURL: "https://nova.arbitrum.io/rpc",
	}
)

// orderedDefinitions is the canonical column order of an Ethereum-family sheet.
var orderedDefinitions = []entity.NetworkDefinition{
	Ethereum,
	Arbitrum,
	Optimism,
	Linea,
	ZkSync,
	Scroll,
	Base,
	ArbitrumNova,
}

// allKnownDefinitions is a helper to quickly access all hardcoded definitions.
var allKnownDefinitions = func() map[string]entity.NetworkDefinition {
	m := make(map[string]entity.NetworkDefinition, len(orderedDefinitions))
	for _, def := range orderedDefinitions {
		m[def.Identifier] = def
	}
	return m
}()

// All returns the known definitions in canonical order.
func All() []entity.NetworkDefinition {
	defsCopy := make([]entity.NetworkDefinition, len(orderedDefinitions))
	copy(defsCopy, orderedDefinitions)
	return defsCopy
}

// Identifiers returns the known network identifiers in canonical order.
func Identifiers() []string {
	ids := make([]string, len(orderedDefinitions))
	for i, def := range orderedDefinitions {
		ids[i] = def.Identifier
	}
	return ids
}

// Lookup returns the definition for an identifier. Matching ignores case and surrounding spaces.
func Lookup(identifier string) (entity.NetworkDefinition, bool) {
	def, ok := allKnownDefinitions[strings.ToLower(strings.TrimSpace(identifier))]
	return def, ok
}

// MustLookup is Lookup for identifiers known at compile time.
func MustLookup(identifier string) entity.NetworkDefinition {
	def, ok := Lookup(identifier)
	if !ok {
		panic(fmt.Sprintf("unknown network identifier %q", identifier))
	}
	return def
}
