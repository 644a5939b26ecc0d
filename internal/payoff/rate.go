package payoff

import (
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// MonthlyRate converts an annual percentage rate (24 meaning 24%) to a
// monthly fraction.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(monthsPerYear).Div(models.Hundred)
}

// DailyRate converts an annual percentage rate to a daily fraction over a
// linear 365-day year.
func DailyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(daysPerYear).Div(models.Hundred)
}
