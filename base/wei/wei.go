// Package wei converts between the ledger's smallest-unit integer amounts
// and display-unit decimal strings. The integer side is always exact; only
// rendering may round.
package wei

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zenith-market/goapi/domain"
)

// ToDisplay scales a wei amount down by the currency exponent. Exact.
func ToDisplay(value *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(value, -decimals)
}

// FromDisplayString parses a user supplied display-unit amount and scales it
// up to wei. Negative amounts and amounts with a fractional-wei remainder are
// rejected, never clamped.
func FromDisplayString(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, domain.ErrInvalidPrice
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}
	scaled := d.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, domain.ErrInvalidPrice
	}
	return scaled.BigInt(), nil
}
