package payoff

import (
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// SavingsOutcome tags an InterestSavings result.
type SavingsOutcome string

const (
	SavingsOutcomeComputed    SavingsOutcome = "computed"
	SavingsOutcomeUnavailable SavingsOutcome = "unavailable"
)

// ScenarioDigest condenses one schedule for side-by-side comparison.
type ScenarioDigest struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment" yaml:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	PayoffMonths   int             `json:"payoff_months" yaml:"payoff_months"`
}

// InterestSavings compares paying the minimum with paying minimum + extra.
type InterestSavings struct {
	Outcome         SavingsOutcome  `json:"outcome" yaml:"outcome"`
	Minimum         ScenarioDigest  `json:"minimum" yaml:"minimum"`
	Accelerated     ScenarioDigest  `json:"accelerated" yaml:"accelerated"`
	InterestSaved   decimal.Decimal `json:"interest_saved" yaml:"interest_saved"`
	MonthsSaved     int             `json:"months_saved" yaml:"months_saved"`
	PercentageSaved decimal.Decimal `json:"percentage_saved" yaml:"percentage_saved"`
}

// CalculateInterestSavings reports how much interest and how many months an
// extra amount on top of the minimum payment saves. The outcome is
// unavailable when either schedule cannot be built or the card has no
// balance.
func CalculateInterestSavings(card models.CreditCardSnapshot, extra decimal.Decimal) (InterestSavings, error) {
	if err := validateSnapshot(opSavings, card); err != nil {
		return InterestSavings{}, err
	}
	if extra.IsNegative() {
		return InterestSavings{}, calcerror.NewInvalidInput(opSavings, "extra_payment", extra.String(), "must not be negative")
	}
	if !card.Balance.IsPositive() {
		return InterestSavings{Outcome: SavingsOutcomeUnavailable}, nil
	}

	rate := MonthlyRate(card.AnnualInterestRatePercent)
	from := card.ReferenceDate()
	minPayment := models.Round2(minimumPayment(card))

	base := Simulate(card.Balance, rate, minPayment, MaxMonths, from)
	accelerated := Simulate(card.Balance, rate, minPayment.Add(extra), MaxMonths, from)
	if !base.IsSuccess() || !accelerated.IsSuccess() {
		return InterestSavings{Outcome: SavingsOutcomeUnavailable}, nil
	}

	saved := base.Summary.TotalInterestPaid.Sub(accelerated.Summary.TotalInterestPaid)
	percentage := decimal.Zero
	if base.Summary.TotalInterestPaid.IsPositive() {
		percentage = models.Round2(saved.Div(base.Summary.TotalInterestPaid).Mul(models.Hundred))
	}

	return InterestSavings{
		Outcome:         SavingsOutcomeComputed,
		Minimum:         digest(base),
		Accelerated:     digest(accelerated),
		InterestSaved:   models.Round2(saved),
		MonthsSaved:     base.Months() - accelerated.Months(),
		PercentageSaved: percentage,
	}, nil
}

func digest(result ScheduleResult) ScenarioDigest {
	return ScenarioDigest{
		MonthlyPayment: result.Summary.MonthlyPayment,
		TotalInterest:  result.Summary.TotalInterestPaid,
		PayoffMonths:   result.Summary.TotalPayments,
	}
}
