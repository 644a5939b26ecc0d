package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReportingPlaces is the number of decimal places monetary values carry
// once they leave the engine.
const ReportingPlaces int32 = 2

var (
	// Cent is the smallest reportable currency unit.
	Cent = decimal.New(1, -2)

	// Hundred is used for percent conversions.
	Hundred = decimal.NewFromInt(100)
)

// Round2 rounds an amount to two decimal places, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(ReportingPlaces)
}

// CeilUnit rounds an amount up to the next whole currency unit.
func CeilUnit(amount decimal.Decimal) decimal.Decimal {
	return amount.Ceil()
}

// MaxAmount returns the larger of two amounts
func MaxAmount(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThanOrEqual(b) {
		return a
	}
	return b
}

// MinAmount returns the smaller of two amounts
func MinAmount(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThanOrEqual(b) {
		return a
	}
	return b
}

// PercentOf returns amount * percent / 100.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(Hundred)
}

// NewAmountFromString parses a plain decimal string such as "1200.50".
// Use currencyutils.ParseAmount for user-entered amounts with separators.
func NewAmountFromString(amount string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return dec, nil
}

// MustAmount parses a plain decimal string and panics on failure.
// Intended for constants and tests.
func MustAmount(amount string) decimal.Decimal {
	return decimal.RequireFromString(amount)
}
