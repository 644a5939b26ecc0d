package payoff

import (
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// DebtGrowthEntry is one month of a no-payment projection.
type DebtGrowthEntry struct {
	MonthIndex           int             `json:"month_index" yaml:"month_index"`
	Balance              decimal.Decimal `json:"balance" yaml:"balance"`
	InterestAdded        decimal.Decimal `json:"interest_added" yaml:"interest_added"`
	TotalInterestAccrued decimal.Decimal `json:"total_interest_accrued" yaml:"total_interest_accrued"`
}

// ProjectGrowthWithoutPayments compounds the balance monthly for the given
// number of months with no payments at all.
func ProjectGrowthWithoutPayments(card models.CreditCardSnapshot, months int) ([]DebtGrowthEntry, error) {
	if err := validateSnapshot(opGrowth, card); err != nil {
		return nil, err
	}
	if months < 0 {
		return nil, calcerror.NewInvalidInput(opGrowth, "months", months, "must not be negative")
	}

	rate := MonthlyRate(card.AnnualInterestRatePercent)
	balance := card.Balance
	growth := make([]DebtGrowthEntry, 0, months)

	for month := 1; month <= months; month++ {
		interest := balance.Mul(rate).Round(internalPlaces)
		balance = balance.Add(interest)

		growth = append(growth, DebtGrowthEntry{
			MonthIndex:           month,
			Balance:              models.Round2(balance),
			InterestAdded:        models.Round2(interest),
			TotalInterestAccrued: models.Round2(balance.Sub(card.Balance)),
		})
	}

	return growth, nil
}
