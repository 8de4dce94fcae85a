package entity

import "github.com/shopspring/decimal"

// DisabledPlaceholder is written into a balance cell for a network that is switched off.
const DisabledPlaceholder = "-"

// BalanceCell is one network column of an EVMRecord.
// Either Amount is meaningful, or Placeholder carries "-" / an error text.
type BalanceCell struct {
	Network     string          `json:"network"`
	Amount      decimal.Decimal `json:"amount"`
	Placeholder string          `json:"placeholder,omitempty"`
}

// AmountCell returns a cell holding a numeric balance.
func AmountCell(network string, amount decimal.Decimal) BalanceCell {
	return BalanceCell{Network: network, Amount: amount}
}

// PlaceholderCell returns a cell holding a sentinel string instead of a number.
func PlaceholderCell(network, placeholder string) BalanceCell {
	return BalanceCell{Network: network, Placeholder: placeholder}
}

// IsPlaceholder reports whether the cell carries a sentinel instead of an amount.
func (c BalanceCell) IsPlaceholder() bool {
	return c.Placeholder != ""
}

// Value returns the cell content as it should land in a spreadsheet:
// a float64 for amounts, the placeholder string otherwise.
func (c BalanceCell) Value() any {
	if c.IsPlaceholder() {
		return c.Placeholder
	}
	f, _ := c.Amount.Float64()
	return f
}

// String renders the cell for text-only sinks.
func (c BalanceCell) String() string {
	if c.IsPlaceholder() {
		return c.Placeholder
	}
	return c.Amount.String()
}
