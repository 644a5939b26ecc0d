// Package solve implements the solve command
package solve

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

const flagMonths = "months"

// Cmd represents the solve command
var Cmd = NewCommand()

// NewCommand builds the solve command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Payment needed to pay a card off within a number of months",
		Long: `Find the smallest whole monthly payment that clears the balance within
--months months.`,
		Args: cobra.NoArgs,
		RunE: common.Run("solve", run),
	}
	common.AddCardFlags(cmd)
	cmd.Flags().Int(flagMonths, 12, "Target number of months")
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}
	months, _ := cmd.Flags().GetInt(flagMonths)

	solution, err := payoff.SolvePaymentForTargetMonths(card, months)
	if err != nil {
		return err
	}

	entry := log.WithFields(logging.CardFields(card)...).WithFields(
		logging.Field{Key: logging.FieldTargetMonths, Value: months},
		logging.Field{Key: logging.FieldOutcome, Value: string(solution.Outcome)})
	if solution.Found() && !solution.TargetReached {
		entry.Warn("Target not reachable within search bounds",
			logging.Field{Key: logging.FieldPayment, Value: solution.Payment.String()})
	} else {
		entry.Info("Target payment solved",
			logging.Field{Key: logging.FieldPayment, Value: solution.Payment.String()})
	}

	return c.GetRenderer().Solution(cmd.OutOrStdout(), card, solution)
}
