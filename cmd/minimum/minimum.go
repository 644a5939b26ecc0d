// Package minimum implements the minimum command
package minimum

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

// Cmd represents the minimum command
var Cmd = NewCommand()

// NewCommand builds the minimum command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimum",
		Short: "Minimum payment and current interest for a card",
		Long: `Show the minimum payment (the minimum rate applied to the balance, never
less than 50), this month's and one day's interest, and credit utilization
when a limit is known.`,
		Args: cobra.NoArgs,
		RunE: common.Run("minimum", run),
	}
	common.AddCardFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}

	minimum, err := payoff.MinimumPayment(card)
	if err != nil {
		return err
	}
	overview, err := payoff.Overview(card)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Minimum payment computed",
		logging.Field{Key: logging.FieldPayment, Value: minimum.String()})

	return c.GetRenderer().Minimum(cmd.OutOrStdout(), card, minimum, overview)
}
