// Package schedule implements the schedule command
package schedule

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

const (
	flagPayment   = "payment"
	flagMaxMonths = "max-months"
)

// Cmd represents the schedule command
var Cmd = NewCommand()

// NewCommand builds the schedule command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Month-by-month payoff schedule for a fixed payment",
		Long: `Simulate paying the same amount every month until the card is paid off.
Each month interest is charged on the remaining balance and the rest of the
payment reduces it. A payment that does not cover the first month's interest
is reported together with the smallest whole payment that would.`,
		Args: cobra.NoArgs,
		RunE: common.Run("schedule", run),
	}

	common.AddCardFlags(cmd)
	cmd.Flags().String(flagPayment, "", "Monthly payment amount")
	cmd.Flags().Int(flagMaxMonths, payoff.MaxMonths, "Stop the schedule after this many months")
	_ = cmd.MarkFlagRequired(flagPayment)

	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}
	payment, err := common.ParseAmountFlag(cmd, flagPayment)
	if err != nil {
		return err
	}
	maxMonths, _ := cmd.Flags().GetInt(flagMaxMonths)

	result, err := payoff.ComputeScheduleWithin(card, payment, maxMonths)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Schedule computed",
		logging.Field{Key: logging.FieldPayment, Value: payment.String()},
		logging.Field{Key: logging.FieldOutcome, Value: string(result.Outcome)},
		logging.Field{Key: logging.FieldMonths, Value: result.Months()})

	return c.GetRenderer().Schedule(cmd.OutOrStdout(), card, result)
}
