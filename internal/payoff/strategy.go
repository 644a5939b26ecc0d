package payoff

import (
	"sort"

	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

// Strategy names a debt-prioritization heuristic.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche"
	StrategySnowball  Strategy = "snowball"
)

// PriorityCode explains why a debt holds its position in a ranking.
type PriorityCode string

const (
	PriorityHighestRate   PriorityCode = "highest_rate"
	PriorityLowestBalance PriorityCode = "lowest_balance"
)

// RankedDebt is one card in a strategy ordering.
type RankedDebt struct {
	Position                  int             `json:"position" yaml:"position"`
	ID                        string          `json:"id" yaml:"id"`
	Label                     string          `json:"label" yaml:"label"`
	Balance                   decimal.Decimal `json:"balance" yaml:"balance"`
	AnnualInterestRatePercent decimal.Decimal `json:"annual_interest_rate_percent" yaml:"annual_interest_rate_percent"`
	Priority                  PriorityCode    `json:"priority" yaml:"priority"`
}

// StrategyRanking holds both orderings of the same debts.
type StrategyRanking struct {
	Avalanche []RankedDebt `json:"avalanche" yaml:"avalanche"`
	Snowball  []RankedDebt `json:"snowball" yaml:"snowball"`
}

// Order returns the ordering for a strategy.
func (r StrategyRanking) Order(strategy Strategy) []RankedDebt {
	if strategy == StrategySnowball {
		return r.Snowball
	}
	return r.Avalanche
}

// RankDebtsByStrategy orders debts by annual rate, highest first (avalanche)
// and by balance, smallest first (snowball). It is a static prioritization:
// nothing is simulated and no combined payoff timeline is produced.
//
// Avalanche ties go to the smaller balance and snowball ties to the higher
// rate; anything still tied keeps its input order.
func RankDebtsByStrategy(debts []models.CreditCardSnapshot) (StrategyRanking, error) {
	for _, debt := range debts {
		if err := validateSnapshot(opRank, debt); err != nil {
			return StrategyRanking{}, err
		}
	}

	avalanche := append([]models.CreditCardSnapshot(nil), debts...)
	sort.SliceStable(avalanche, func(i, j int) bool {
		if avalanche[i].AnnualInterestRatePercent.Equal(avalanche[j].AnnualInterestRatePercent) {
			return avalanche[i].Balance.LessThan(avalanche[j].Balance)
		}
		return avalanche[i].AnnualInterestRatePercent.GreaterThan(avalanche[j].AnnualInterestRatePercent)
	})

	snowball := append([]models.CreditCardSnapshot(nil), debts...)
	sort.SliceStable(snowball, func(i, j int) bool {
		if snowball[i].Balance.Equal(snowball[j].Balance) {
			return snowball[i].AnnualInterestRatePercent.GreaterThan(snowball[j].AnnualInterestRatePercent)
		}
		return snowball[i].Balance.LessThan(snowball[j].Balance)
	})

	return StrategyRanking{
		Avalanche: rank(avalanche, PriorityHighestRate),
		Snowball:  rank(snowball, PriorityLowestBalance),
	}, nil
}

func rank(debts []models.CreditCardSnapshot, priority PriorityCode) []RankedDebt {
	ranked := make([]RankedDebt, len(debts))
	for i, debt := range debts {
		ranked[i] = RankedDebt{
			Position:                  i + 1,
			ID:                        debt.ID,
			Label:                     debt.Label,
			Balance:                   models.Round2(debt.Balance),
			AnnualInterestRatePercent: debt.AnnualInterestRatePercent,
			Priority:                  priority,
		}
	}
	return ranked
}
