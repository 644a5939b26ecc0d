// Package savings implements the savings command
package savings

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

const flagExtra = "extra"

// Cmd represents the savings command
var Cmd = NewCommand()

// NewCommand builds the savings command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Interest saved by paying more than the minimum",
		Long: `Compare paying only the minimum with paying the minimum plus --extra every
month: interest saved, months saved and the share of interest avoided.`,
		Args: cobra.NoArgs,
		RunE: common.Run("savings", run),
	}
	common.AddCardFlags(cmd)
	cmd.Flags().String(flagExtra, "", "Extra amount paid on top of the minimum each month")
	_ = cmd.MarkFlagRequired(flagExtra)
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}
	extra, err := common.ParseAmountFlag(cmd, flagExtra)
	if err != nil {
		return err
	}

	savings, err := payoff.CalculateInterestSavings(card, extra)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Interest savings computed",
		logging.Field{Key: logging.FieldPayment, Value: extra.String()},
		logging.Field{Key: logging.FieldOutcome, Value: string(savings.Outcome)})

	return c.GetRenderer().Savings(cmd.OutOrStdout(), card, extra, savings)
}
