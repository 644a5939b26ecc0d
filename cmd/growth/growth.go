// Package growth implements the growth command
package growth

import (
	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/spf13/cobra"
)

const flagMonths = "months"

// Cmd represents the growth command
var Cmd = NewCommand()

// NewCommand builds the growth command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "How the balance grows if nothing is paid",
		Long:  `Compound the balance monthly with no payments and show each month's interest.`,
		Args:  cobra.NoArgs,
		RunE:  common.Run("growth", run),
	}
	common.AddCardFlags(cmd)
	cmd.Flags().Int(flagMonths, 12, "Number of months to project")
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}
	months, _ := cmd.Flags().GetInt(flagMonths)

	entries, err := payoff.ProjectGrowthWithoutPayments(card, months)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Debt growth projected",
		logging.Field{Key: logging.FieldMonths, Value: months})

	return c.GetRenderer().Growth(cmd.OutOrStdout(), card, entries)
}
