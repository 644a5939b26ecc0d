// Package payoff is the credit-card interest and payoff-scheduling engine.
//
// Every exported operation is a pure function of a models.CreditCardSnapshot
// and its arguments: there is no calculator instance, no shared state and no
// I/O, so callers may invoke them concurrently without coordination.
//
// Expected business outcomes (a payment that does not cover interest, a
// target that cannot be solved) are reported as typed result values. The
// error return is reserved for *calcerror.InvalidInputError, a caller
// contract violation.
package payoff

import (
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// MaxMonths caps every simulated schedule.
const MaxMonths = 60

// internalPlaces bounds the precision of running balances that would
// otherwise grow a digit string on every compounding step.
const internalPlaces int32 = 10

var (
	// Epsilon is the remaining balance at or below which a card counts as paid.
	Epsilon = models.Cent

	// MinimumPaymentFloor is the smallest minimum payment ever quoted.
	MinimumPaymentFloor = decimal.NewFromInt(50)

	// SolverPrecision is the bracket width at which the inverse solver stops.
	SolverPrecision = models.Cent

	two = decimal.NewFromInt(2)
)

// Operation names used in InvalidInputError.
const (
	opSchedule  = "schedule"
	opMinimum   = "minimum"
	opSolve     = "solve"
	opCompare   = "compare"
	opRecommend = "recommend"
	opGrowth    = "growth"
	opRank      = "rank"
	opSavings   = "savings"
	opOverview  = "overview"
)

func validateSnapshot(op string, card models.CreditCardSnapshot) error {
	checks := []struct {
		field string
		value decimal.Decimal
	}{
		{"balance", card.Balance},
		{"annual_interest_rate_percent", card.AnnualInterestRatePercent},
		{"minimum_payment_rate_percent", card.MinimumPaymentRatePercent},
		{"credit_limit", card.CreditLimit},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return calcerror.NewInvalidInput(op, c.field, c.value.String(), "must not be negative")
		}
	}
	return nil
}
