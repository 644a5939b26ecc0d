package payoff

import (
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// CompareScenarios runs one independent simulation per payment amount and
// returns the results in input order.
func CompareScenarios(card models.CreditCardSnapshot, payments []decimal.Decimal) ([]ScheduleResult, error) {
	if err := validateSnapshot(opCompare, card); err != nil {
		return nil, err
	}

	rate := MonthlyRate(card.AnnualInterestRatePercent)
	from := card.ReferenceDate()

	results := make([]ScheduleResult, 0, len(payments))
	for _, payment := range payments {
		results = append(results, Simulate(card.Balance, rate, payment, MaxMonths, from))
	}
	return results, nil
}
