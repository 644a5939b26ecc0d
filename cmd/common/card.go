// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"

	"fjacquet/card-payoff/internal/currencyutils"
	"fjacquet/card-payoff/internal/dateutils"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/models"
	"fjacquet/card-payoff/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Card flag names.
const (
	FlagID      = "id"
	FlagBalance = "balance"
	FlagRate    = "rate"
	FlagMinRate = "min-rate"
	FlagLimit   = "limit"
	FlagLabel   = "label"
	FlagAsOf    = "as-of"
)

// AddCardFlags registers the flags that describe a single card, either
// inline or by ID in the portfolio file.
func AddCardFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(FlagID, "", "Card ID in the portfolio file given with --cards")
	flags.String(FlagBalance, "", "Current balance, e.g. 1200 or 1.200,50")
	flags.String(FlagRate, "", "Annual interest rate in percent, e.g. 24")
	flags.String(FlagMinRate, "0", "Minimum payment rate in percent of the balance")
	flags.String(FlagLimit, "", "Credit limit (optional)")
	flags.String(FlagLabel, "", "Card label used in output")
	flags.String(FlagAsOf, "", "Date payoff dates are counted from (default today)")
}

// ResolveCard returns the card a command should work on. An --id selects a
// card from the portfolio; otherwise --balance and --rate describe the card
// inline. Without either, a portfolio holding exactly one card is used.
func ResolveCard(cmd *cobra.Command, cards store.CardSource, log logging.Logger) (models.CreditCardSnapshot, error) {
	flags := cmd.Flags()

	if id, _ := flags.GetString(FlagID); id != "" {
		card, err := cards.FindCard(id)
		if err != nil {
			return models.CreditCardSnapshot{}, err
		}
		log.Debug("Using card from portfolio", logging.Field{Key: logging.FieldCardID, Value: id})
		return card, nil
	}

	if flags.Changed(FlagBalance) {
		return cardFromFlags(cmd)
	}

	all, err := cards.LoadCards()
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("either --%s or --%s with --cards is required: %w", FlagBalance, FlagID, err)
	}
	if len(all) != 1 {
		return models.CreditCardSnapshot{}, fmt.Errorf("portfolio holds %d cards; select one with --%s", len(all), FlagID)
	}
	return all[0], nil
}

func cardFromFlags(cmd *cobra.Command) (models.CreditCardSnapshot, error) {
	flags := cmd.Flags()
	get := func(name string) string {
		value, _ := flags.GetString(name)
		return strings.TrimSpace(value)
	}

	if !flags.Changed(FlagRate) {
		return models.CreditCardSnapshot{}, fmt.Errorf("--%s is required with --%s", FlagRate, FlagBalance)
	}

	balance, err := currencyutils.ParseAmount(get(FlagBalance))
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("--%s: %w", FlagBalance, err)
	}
	rate, err := currencyutils.ParsePercent(get(FlagRate))
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("--%s: %w", FlagRate, err)
	}
	minRate, err := currencyutils.ParsePercent(get(FlagMinRate))
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("--%s: %w", FlagMinRate, err)
	}
	limit, err := currencyutils.ParseAmount(get(FlagLimit))
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("--%s: %w", FlagLimit, err)
	}

	card := models.NewCreditCardSnapshot(balance, rate, minRate)
	card.CreditLimit = limit
	card.Label = get(FlagLabel)

	if asOf := get(FlagAsOf); asOf != "" {
		date, _, err := dateutils.ParseDate(asOf)
		if err != nil {
			return models.CreditCardSnapshot{}, fmt.Errorf("--%s: %w", FlagAsOf, err)
		}
		card.AsOf = date
	}

	return card, nil
}

// ParseAmountFlag reads a monetary flag value.
func ParseAmountFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	value, _ := cmd.Flags().GetString(name)
	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return amount, nil
}
