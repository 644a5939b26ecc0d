package payoff

import (
	"time"

	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/dateutils"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// Outcome tags a ScheduleResult.
type Outcome string

const (
	OutcomeSuccess             Outcome = "success"
	OutcomeInsufficientPayment Outcome = "insufficient_payment"
)

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	MonthIndex       int             `json:"month_index" yaml:"month_index"`
	PaymentAmount    decimal.Decimal `json:"payment_amount" yaml:"payment_amount"`
	InterestPortion  decimal.Decimal `json:"interest_portion" yaml:"interest_portion"`
	PrincipalPortion decimal.Decimal `json:"principal_portion" yaml:"principal_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance" yaml:"remaining_balance"`
}

// ScheduleSummary totals a successful schedule.
type ScheduleSummary struct {
	TotalPayments     int             `json:"total_payments" yaml:"total_payments"`
	TotalAmountPaid   decimal.Decimal `json:"total_amount_paid" yaml:"total_amount_paid"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid" yaml:"total_interest_paid"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment" yaml:"monthly_payment"`
	PayoffDate        time.Time       `json:"payoff_date" yaml:"payoff_date"`
}

// ScheduleResult is either a successful schedule or an insufficient-payment
// outcome carrying the smallest whole payment that would cover the interest.
type ScheduleResult struct {
	Outcome       Outcome         `json:"outcome" yaml:"outcome"`
	PaymentAmount decimal.Decimal `json:"payment_amount" yaml:"payment_amount"`

	Entries []ScheduleEntry  `json:"entries,omitempty" yaml:"entries,omitempty"`
	Summary *ScheduleSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	// Truncated is set when the schedule stopped at the month cap with
	// balance still outstanding.
	Truncated bool `json:"truncated,omitempty" yaml:"truncated,omitempty"`

	MinimumRequired decimal.Decimal `json:"minimum_required,omitzero" yaml:"minimum_required,omitempty"`
}

// IsSuccess reports whether the result holds a schedule.
func (r ScheduleResult) IsSuccess() bool {
	return r.Outcome == OutcomeSuccess
}

// Months returns the number of scheduled payments, zero when insufficient.
func (r ScheduleResult) Months() int {
	return len(r.Entries)
}

// ComputeSchedule simulates paying a fixed amount every month, for at most
// MaxMonths months.
func ComputeSchedule(card models.CreditCardSnapshot, payment decimal.Decimal) (ScheduleResult, error) {
	return ComputeScheduleWithin(card, payment, MaxMonths)
}

// ComputeScheduleWithin is ComputeSchedule with an explicit month cap.
//
// A non-positive payment or a zero balance yields a successful, empty
// schedule with a zeroed summary.
func ComputeScheduleWithin(card models.CreditCardSnapshot, payment decimal.Decimal, maxMonths int) (ScheduleResult, error) {
	if err := validateSnapshot(opSchedule, card); err != nil {
		return ScheduleResult{}, err
	}
	if maxMonths <= 0 {
		return ScheduleResult{}, calcerror.NewInvalidInput(opSchedule, "max_months", maxMonths, "must be positive")
	}

	return Simulate(card.Balance, MonthlyRate(card.AnnualInterestRatePercent), payment, maxMonths, card.ReferenceDate()), nil
}

// Simulate is the amortization loop. It does no validation beyond the
// empty-schedule guard and assumes maxMonths > 0.
//
// Each month interest is charged on the remaining balance and rounded to the
// cent. If the payment does not cover that interest the simulation stops at
// once with OutcomeInsufficientPayment, so a growing-balance schedule is
// never emitted. Otherwise the rest of the payment reduces the balance, which
// therefore never increases and never drops below zero.
func Simulate(balance, monthlyRate, payment decimal.Decimal, maxMonths int, from time.Time) ScheduleResult {
	if !payment.IsPositive() || !balance.IsPositive() {
		return emptySchedule(payment, from)
	}

	remaining := balance
	totalInterest := decimal.Zero
	entries := make([]ScheduleEntry, 0, min(maxMonths, MaxMonths))

	for month := 1; remaining.GreaterThan(Epsilon) && month <= maxMonths; month++ {
		interest := models.Round2(remaining.Mul(monthlyRate))

		if payment.LessThan(interest) {
			return ScheduleResult{
				Outcome:         OutcomeInsufficientPayment,
				PaymentAmount:   models.Round2(payment),
				MinimumRequired: models.CeilUnit(interest.Add(decimal.NewFromInt(1))),
			}
		}

		principal := models.MinAmount(payment.Sub(interest), remaining)
		remaining = models.MaxAmount(decimal.Zero, remaining.Sub(principal))
		totalInterest = totalInterest.Add(interest)

		entries = append(entries, ScheduleEntry{
			MonthIndex:       month,
			PaymentAmount:    models.Round2(interest.Add(principal)),
			InterestPortion:  interest,
			PrincipalPortion: models.Round2(principal),
			RemainingBalance: models.Round2(remaining),
		})
	}

	return ScheduleResult{
		Outcome:       OutcomeSuccess,
		PaymentAmount: models.Round2(payment),
		Entries:       entries,
		Summary: &ScheduleSummary{
			TotalPayments:     len(entries),
			TotalAmountPaid:   models.Round2(balance.Add(totalInterest)),
			TotalInterestPaid: models.Round2(totalInterest),
			MonthlyPayment:    models.Round2(payment),
			PayoffDate:        dateutils.AddMonths(from, len(entries)),
		},
		Truncated: remaining.GreaterThan(Epsilon),
	}
}

func emptySchedule(payment decimal.Decimal, from time.Time) ScheduleResult {
	return ScheduleResult{
		Outcome:       OutcomeSuccess,
		PaymentAmount: models.Round2(payment),
		Entries:       []ScheduleEntry{},
		Summary: &ScheduleSummary{
			TotalAmountPaid:   decimal.Zero,
			TotalInterestPaid: decimal.Zero,
			MonthlyPayment:    decimal.Zero,
			PayoffDate:        from,
		},
	}
}
