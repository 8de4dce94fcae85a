package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places EVM balances are rounded to.
const DisplayPlaces = 5

// FromBaseUnits converts an integer amount of base units into whole units.
// Example: amount=1234500000000000000, decimals=18 => 1.2345
func FromBaseUnits(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// WeiToDisplay converts wei into ether rounded half-to-even to DisplayPlaces.
func WeiToDisplay(wei *big.Int, decimals int32) decimal.Decimal {
	return FromBaseUnits(wei, decimals).RoundBank(DisplayPlaces)
}

// ParseMicroAmount parses a Cosmos coin amount and scales it down by 10^exponent.
// Cosmos returns Coin amounts as integers and DecCoin amounts with a fractional part.
func ParseMicroAmount(raw string, exponent int32) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return d.Shift(-exponent), nil
}
