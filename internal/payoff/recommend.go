package payoff

import (
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// RecommendationKind identifies one of the canonical payment scenarios.
type RecommendationKind string

const (
	KindMinimum        RecommendationKind = "minimum"
	KindDoubleMinimum  RecommendationKind = "double_minimum"
	KindTarget12Months RecommendationKind = "target_12_months"
	KindTarget6Months  RecommendationKind = "target_6_months"
)

// Recommendation is a named payment scenario with its schedule summary.
type Recommendation struct {
	Kind            RecommendationKind `json:"kind" yaml:"kind"`
	PaymentAmount   decimal.Decimal    `json:"payment_amount" yaml:"payment_amount"`
	ScheduleSummary `yaml:",inline"`
}

var targetKinds = []struct {
	kind   RecommendationKind
	months int
}{
	{KindTarget12Months, 12},
	{KindTarget6Months, 6},
}

// BuildRecommendations returns, in order, the minimum, double-minimum,
// 12-month and 6-month scenarios. A scenario whose payment does not cover
// the interest, or whose target could not be solved, is left out. A card
// with no balance gets no recommendations.
func BuildRecommendations(card models.CreditCardSnapshot) ([]Recommendation, error) {
	if err := validateSnapshot(opRecommend, card); err != nil {
		return nil, err
	}

	recommendations := []Recommendation{}
	if !card.Balance.IsPositive() {
		return recommendations, nil
	}

	rate := MonthlyRate(card.AnnualInterestRatePercent)
	from := card.ReferenceDate()

	add := func(kind RecommendationKind, payment decimal.Decimal) {
		result := Simulate(card.Balance, rate, payment, MaxMonths, from)
		if !result.IsSuccess() {
			return
		}
		recommendations = append(recommendations, Recommendation{
			Kind:            kind,
			PaymentAmount:   result.PaymentAmount,
			ScheduleSummary: *result.Summary,
		})
	}

	minPayment := models.Round2(minimumPayment(card))
	add(KindMinimum, minPayment)
	add(KindDoubleMinimum, minPayment.Mul(two))

	for _, target := range targetKinds {
		solution := solve(card, target.months)
		if !solution.Found() {
			continue
		}
		add(target.kind, solution.Payment)
	}

	return recommendations, nil
}
