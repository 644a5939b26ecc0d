// Package recommend implements the recommend command
package recommend

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

// Cmd represents the recommend command
var Cmd = NewCommand()

// NewCommand builds the recommend command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggested payment plans for a card",
		Long: `Show the minimum payment, twice the minimum, and the payments that clear
the card in 12 and in 6 months, each with its total cost. Plans whose
payment does not cover the interest are left out.`,
		Args: cobra.NoArgs,
		RunE: common.Run("recommend", run),
	}
	common.AddCardFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}

	recommendations, err := payoff.BuildRecommendations(card)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Recommendations built",
		logging.Field{Key: logging.FieldCount, Value: len(recommendations)})

	return c.GetRenderer().Recommendations(cmd.OutOrStdout(), card, recommendations)
}
