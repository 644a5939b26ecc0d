// Package rank implements the rank command
package rank

import (
	"fmt"

	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

// Cmd represents the rank command
var Cmd = NewCommand()

// NewCommand builds the rank command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Order the cards of a portfolio for repayment",
		Long: `Rank every card in the --cards portfolio two ways: avalanche (highest
interest rate first) and snowball (lowest balance first).`,
		Args: cobra.NoArgs,
		RunE: common.Run("rank", run),
	}
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	cards, err := c.GetStore().LoadCards()
	if err != nil {
		return fmt.Errorf("rank needs a portfolio given with --cards: %w", err)
	}

	ranking, err := payoff.RankDebtsByStrategy(cards)
	if err != nil {
		return err
	}

	log.Info("Debts ranked", logging.Field{Key: logging.FieldCount, Value: len(cards)})

	return c.GetRenderer().Ranking(cmd.OutOrStdout(), ranking)
}
