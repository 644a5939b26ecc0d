package payoff

import (
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// SolveOutcome tags a Solution.
type SolveOutcome string

const (
	SolveOutcomeSolved     SolveOutcome = "solved"
	SolveOutcomeNoSolution SolveOutcome = "no_solution"
)

// Solution is the result of the inverse solver.
type Solution struct {
	Outcome      SolveOutcome    `json:"outcome" yaml:"outcome"`
	TargetMonths int             `json:"target_months" yaml:"target_months"`
	Payment      decimal.Decimal `json:"payment,omitzero" yaml:"payment,omitempty"`
	// Months is the length of the schedule at Payment.
	Months int `json:"months,omitempty" yaml:"months,omitempty"`
	// TargetReached is false when even the upper search bound could not pay
	// the card off within TargetMonths. Payment is then a best-effort answer.
	TargetReached bool `json:"target_reached" yaml:"target_reached"`
}

// Found reports whether the solver produced a payment.
func (s Solution) Found() bool {
	return s.Outcome == SolveOutcomeSolved
}

// SolvePaymentForTargetMonths searches for the smallest whole payment that
// pays the card off within targetMonths.
//
// The search bisects the payment over [minimum payment, 2 * balance] until
// the bracket is narrower than SolverPrecision and returns ceil(high). It
// relies on schedule length being non-increasing in the payment once the
// payment covers the monthly interest: a larger payment leaves a balance no
// larger than a smaller one after every month, so it can only finish sooner.
//
// A schedule cut off at MaxMonths counts with its truncated length, so a
// target of MaxMonths or more settles on the smallest payment that covers the
// interest. TargetReached reports whether that payment actually clears the
// balance in time.
//
// A zero balance has nothing to solve and yields SolveOutcomeNoSolution.
func SolvePaymentForTargetMonths(card models.CreditCardSnapshot, targetMonths int) (Solution, error) {
	if err := validateSnapshot(opSolve, card); err != nil {
		return Solution{}, err
	}
	if targetMonths <= 0 {
		return Solution{}, calcerror.NewInvalidInput(opSolve, "target_months", targetMonths, "must be positive")
	}
	if !card.Balance.IsPositive() {
		return Solution{Outcome: SolveOutcomeNoSolution, TargetMonths: targetMonths}, nil
	}

	return solve(card, targetMonths), nil
}

func solve(card models.CreditCardSnapshot, targetMonths int) Solution {
	rate := MonthlyRate(card.AnnualInterestRatePercent)
	from := card.ReferenceDate()

	low := minimumPayment(card)
	high := card.Balance.Mul(two)

	for high.Sub(low).GreaterThan(SolverPrecision) {
		mid := low.Add(high).Div(two)
		result := Simulate(card.Balance, rate, mid, MaxMonths, from)

		switch {
		case !result.IsSuccess():
			low = mid
		case result.Months() > targetMonths:
			low = mid
		default:
			high = mid
		}
	}

	payment := models.CeilUnit(high)
	check := Simulate(card.Balance, rate, payment, MaxMonths, from)

	solution := Solution{
		Outcome:      SolveOutcomeSolved,
		TargetMonths: targetMonths,
		Payment:      payment,
	}
	if check.IsSuccess() {
		solution.Months = check.Months()
		solution.TargetReached = !check.Truncated && check.Months() <= targetMonths
	}
	return solution
}
