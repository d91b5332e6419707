package utils

import (
	"github.com/shopspring/decimal"
)

// LineTotal is price*quantity without float drift.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Cents rounds a decimal amount to two places and returns it as a float for JSON.
func Cents(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}

// MinorUnits converts an amount in major currency units to the integer minor
// units payment processors expect (199.99 -> 19999).
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}
