package payoff

import (
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// MinimumPayment returns max(balance * minimumRate%, MinimumPaymentFloor),
// rounded to the cent.
func MinimumPayment(card models.CreditCardSnapshot) (decimal.Decimal, error) {
	if err := validateSnapshot(opMinimum, card); err != nil {
		return decimal.Zero, err
	}
	return models.Round2(minimumPayment(card)), nil
}

func minimumPayment(card models.CreditCardSnapshot) decimal.Decimal {
	return models.MaxAmount(models.PercentOf(card.Balance, card.MinimumPaymentRatePercent), MinimumPaymentFloor)
}
