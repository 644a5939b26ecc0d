package common

import (
	"errors"
	"testing"

	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/models"
	"fjacquet/card-payoff/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddCardFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func portfolio(ids ...string) *store.MockCardStore {
	mock := &store.MockCardStore{}
	for i, id := range ids {
		card := models.NewCreditCardSnapshot(decimal.NewFromInt(int64(100*(i+1))), models.MustAmount("20"), models.MustAmount("3"))
		card.ID = id
		mock.Cards = append(mock.Cards, card)
	}
	return mock
}

func TestResolveCard_Inline(t *testing.T) {
	cmd := cardCommand(t,
		"--balance", "1.200,50",
		"--rate", "24%",
		"--min-rate", "3",
		"--limit", "5000",
		"--label", "Visa",
		"--as-of", "16.10.2026",
	)

	card, err := ResolveCard(cmd, portfolio(), logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, "1200.50", card.Balance.StringFixed(2))
	assert.Equal(t, "24", card.AnnualInterestRatePercent.String())
	assert.Equal(t, "3", card.MinimumPaymentRatePercent.String())
	assert.Equal(t, "5000", card.CreditLimit.String())
	assert.Equal(t, "Visa", card.Label)
	assert.Equal(t, 2026, card.AsOf.Year())
	assert.Equal(t, 16, card.AsOf.Day())
}

func TestResolveCard_InlineDefaults(t *testing.T) {
	card, err := ResolveCard(cardCommand(t, "--balance", "500", "--rate", "18"), portfolio(), logging.NewMockLogger())
	require.NoError(t, err)
	assert.True(t, card.MinimumPaymentRatePercent.IsZero())
	assert.False(t, card.HasCreditLimit())
	assert.True(t, card.AsOf.IsZero())
}

func TestResolveCard_InlineErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{name: "missing rate", args: []string{"--balance", "100"}, errText: "--rate is required"},
		{name: "bad balance", args: []string{"--balance", "lots", "--rate", "1"}, errText: "--balance"},
		{name: "bad rate", args: []string{"--balance", "1", "--rate", "high"}, errText: "--rate"},
		{name: "bad min rate", args: []string{"--balance", "1", "--rate", "1", "--min-rate", "x"}, errText: "--min-rate"},
		{name: "bad limit", args: []string{"--balance", "1", "--rate", "1", "--limit", "x"}, errText: "--limit"},
		{name: "bad date", args: []string{"--balance", "1", "--rate", "1", "--as-of", "soon"}, errText: "--as-of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveCard(cardCommand(t, tt.args...), portfolio(), logging.NewMockLogger())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestResolveCard_FromPortfolio(t *testing.T) {
	logger := logging.NewMockLogger()
	card, err := ResolveCard(cardCommand(t, "--id", "amex"), portfolio("visa", "amex"), logger)
	require.NoError(t, err)
	assert.Equal(t, "amex", card.ID)
	assert.Equal(t, "200", card.Balance.String())
	assert.True(t, logger.HasEntry("DEBUG", "Using card from portfolio"))

	_, err = ResolveCard(cardCommand(t, "--id", "discover"), portfolio("visa"), logger)
	var notFound *calcerror.CardNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestResolveCard_SingleCardPortfolio(t *testing.T) {
	card, err := ResolveCard(cardCommand(t), portfolio("only"), logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, "only", card.ID)

	_, err = ResolveCard(cardCommand(t), portfolio("a", "b"), logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "portfolio holds 2 cards")

	_, err = ResolveCard(cardCommand(t), &store.MockCardStore{LoadError: errors.New("no file")}, logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --balance or --id with --cards is required")
}

func TestParseAmountFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("payment", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--payment", "1'100.50"}))

	amount, err := ParseAmountFlag(cmd, "payment")
	require.NoError(t, err)
	assert.Equal(t, "1100.5", amount.String())

	require.NoError(t, cmd.ParseFlags([]string{"--payment", "abc"}))
	_, err = ParseAmountFlag(cmd, "payment")
	assert.Error(t, err)
}
