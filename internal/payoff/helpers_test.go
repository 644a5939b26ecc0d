package payoff

import (
	"time"

	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

var asOf = time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

func d(amount string) decimal.Decimal {
	return models.MustAmount(amount)
}

func card(balance, rate, minRate string) models.CreditCardSnapshot {
	c := models.NewCreditCardSnapshot(d(balance), d(rate), d(minRate))
	c.AsOf = asOf
	return c
}
