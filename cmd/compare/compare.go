// Package compare implements the compare command
package compare

import (
	"fmt"
	"strings"

	"fjacquet/card-payoff/cmd/common"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/currencyutils"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const flagPayments = "payments"

// Cmd represents the compare command
var Cmd = NewCommand()

// NewCommand builds the compare command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare payoff schedules for several monthly payments",
		Long: `Run one schedule per payment and show them side by side, in the order
given. Payments are a comma-separated list or a repeated flag, written with
a decimal point.`,
		Args: cobra.NoArgs,
		RunE: common.Run("compare", run),
	}
	common.AddCardFlags(cmd)
	cmd.Flags().StringSlice(flagPayments, nil, "Payment amounts to compare, e.g. 100,200,300")
	_ = cmd.MarkFlagRequired(flagPayments)
	return cmd
}

func run(cmd *cobra.Command, c *container.Container, log logging.Logger) error {
	card, err := common.ResolveCard(cmd, c.GetStore(), log)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetStringSlice(flagPayments)
	payments, err := parsePayments(raw)
	if err != nil {
		return err
	}

	results, err := payoff.CompareScenarios(card, payments)
	if err != nil {
		return err
	}

	log.WithFields(logging.CardFields(card)...).Info("Scenarios compared",
		logging.Field{Key: logging.FieldCount, Value: len(results)})

	return c.GetRenderer().Comparison(cmd.OutOrStdout(), card, results)
}

func parsePayments(raw []string) ([]decimal.Decimal, error) {
	var payments []decimal.Decimal
	for _, item := range raw {
		if strings.TrimSpace(item) == "" {
			continue
		}
		amount, err := currencyutils.ParseAmount(item)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flagPayments, err)
		}
		payments = append(payments, amount)
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("--%s: at least one payment is required", flagPayments)
	}
	return payments, nil
}
