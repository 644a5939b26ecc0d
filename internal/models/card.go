// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"fjacquet/card-payoff/internal/dateutils"

	"github.com/shopspring/decimal"
)

// CreditCardSnapshot is the state of one revolving credit-card balance at a
// point in time. It is built by the caller for each calculation and never
// mutated by the engine.
type CreditCardSnapshot struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`

	Balance                   decimal.Decimal `json:"balance" yaml:"balance"`
	AnnualInterestRatePercent decimal.Decimal `json:"annual_interest_rate_percent" yaml:"annual_interest_rate_percent"`
	MinimumPaymentRatePercent decimal.Decimal `json:"minimum_payment_rate_percent" yaml:"minimum_payment_rate_percent"`

	// CreditLimit is optional; zero means the limit is unknown.
	CreditLimit decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`

	// AsOf anchors payoff dates. Zero means today.
	AsOf time.Time `json:"as_of" yaml:"as_of"`
}

// NewCreditCardSnapshot creates a snapshot with the three values every
// calculation needs.
func NewCreditCardSnapshot(balance, annualRatePercent, minimumRatePercent decimal.Decimal) CreditCardSnapshot {
	return CreditCardSnapshot{
		Balance:                   balance,
		AnnualInterestRatePercent: annualRatePercent,
		MinimumPaymentRatePercent: minimumRatePercent,
	}
}

// DisplayName returns the label, falling back to the ID.
func (c CreditCardSnapshot) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// ReferenceDate returns the date payoff dates are counted from.
func (c CreditCardSnapshot) ReferenceDate() time.Time {
	if c.AsOf.IsZero() {
		return dateutils.StartOfDay(time.Now())
	}
	return c.AsOf
}

// HasCreditLimit reports whether the snapshot carries a usable limit.
func (c CreditCardSnapshot) HasCreditLimit() bool {
	return c.CreditLimit.IsPositive()
}
