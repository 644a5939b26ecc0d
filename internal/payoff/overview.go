package payoff

import (
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// CardOverview holds the at-a-glance figures for one card.
type CardOverview struct {
	MonthlyInterest decimal.Decimal `json:"monthly_interest" yaml:"monthly_interest"`
	DailyInterest   decimal.Decimal `json:"daily_interest" yaml:"daily_interest"`
	MinimumPayment  decimal.Decimal `json:"minimum_payment" yaml:"minimum_payment"`

	// Set only when the snapshot has a credit limit.
	UtilizationPercent *decimal.Decimal `json:"utilization_percent,omitempty" yaml:"utilization_percent,omitempty"`
	AvailableCredit    *decimal.Decimal `json:"available_credit,omitempty" yaml:"available_credit,omitempty"`
}

// Overview computes the current month's interest, one day's interest, the
// minimum payment and, when a credit limit is known, utilization and
// available credit.
func Overview(card models.CreditCardSnapshot) (CardOverview, error) {
	if err := validateSnapshot(opOverview, card); err != nil {
		return CardOverview{}, err
	}

	overview := CardOverview{
		MonthlyInterest: models.Round2(card.Balance.Mul(MonthlyRate(card.AnnualInterestRatePercent))),
		DailyInterest:   models.Round2(card.Balance.Mul(DailyRate(card.AnnualInterestRatePercent))),
		MinimumPayment:  models.Round2(minimumPayment(card)),
	}

	if card.HasCreditLimit() {
		utilization := models.Round2(card.Balance.Div(card.CreditLimit).Mul(models.Hundred))
		available := models.MaxAmount(decimal.Zero, card.CreditLimit.Sub(card.Balance))
		overview.UtilizationPercent = &utilization
		overview.AvailableCredit = &available
	}

	return overview, nil
}
