package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fjacquet/card-payoff/internal/models"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var asOf = time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

func testCard(balance, rate, minRate string) models.CreditCardSnapshot {
	card := models.NewCreditCardSnapshot(models.MustAmount(balance), models.MustAmount(rate), models.MustAmount(minRate))
	card.ID = "visa"
	card.Label = "Visa Gold"
	card.AsOf = asOf
	return card
}

func newRenderer(t *testing.T, format Format, lang, currency string, delimiter rune) *Renderer {
	t.Helper()
	loc, err := NewLocalizer(lang, "")
	require.NoError(t, err)
	return NewRenderer(format, loc, currency, delimiter)
}

func schedule(t *testing.T, card models.CreditCardSnapshot, payment string) payoff.ScheduleResult {
	t.Helper()
	result, err := payoff.ComputeSchedule(card, models.MustAmount(payment))
	require.NoError(t, err)
	return result
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		f, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, f)
	}
}

func TestRenderer_ScheduleCSV(t *testing.T) {
	card := testCard("1200", "24", "3")
	var buf bytes.Buffer

	r := newRenderer(t, FormatCSV, "en", "TRY", ',')
	require.NoError(t, r.Schedule(&buf, card, schedule(t, card, "110")))

	out := lines(buf.String())
	require.Len(t, out, 14)
	assert.Equal(t, "month,payment,interest,principal,remaining_balance", out[0])
	assert.Equal(t, "1,110.00,24.00,86.00,1114.00", out[1])
	assert.True(t, strings.HasSuffix(out[13], ",0.00"))
}

func TestRenderer_ScheduleTextEnglish(t *testing.T) {
	card := testCard("1200", "24", "3")
	var buf bytes.Buffer

	r := newRenderer(t, FormatText, "en", "TRY", 0)
	require.NoError(t, r.Schedule(&buf, card, schedule(t, card, "110")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Payment schedule\n================\n"))
	assert.Contains(t, out, "Visa Gold")
	assert.Contains(t, out, "Number of payments:")
	assert.Contains(t, out, "Month")
	assert.Contains(t, out, "Remaining")
	assert.Contains(t, out, "₺1114.00")
	assert.Contains(t, out, "2027-11-16")
	assert.NotContains(t, out, "* ")
}

func TestRenderer_ScheduleTextTurkishInsufficient(t *testing.T) {
	card := testCard("1200", "24", "3")
	var buf bytes.Buffer

	r := newRenderer(t, FormatText, "tr", "TRY", 0)
	require.NoError(t, r.Schedule(&buf, card, schedule(t, card, "20")))

	out := buf.String()
	assert.Contains(t, out, "Ödeme planı")
	assert.Contains(t, out, "* ₺20.00 tutarındaki ödeme aylık faizden düşük, borç artacak. En az ₺25.00 ödeyin.")
}

func TestRenderer_ScheduleJSON(t *testing.T) {
	card := testCard("1200", "24", "3")
	var buf bytes.Buffer

	r := newRenderer(t, FormatJSON, "en", "", 0)
	require.NoError(t, r.Schedule(&buf, card, schedule(t, card, "20")))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "schedule", decoded["operation"])

	result := decoded["result"].(map[string]interface{})
	assert.Equal(t, "insufficient_payment", result["outcome"])
	assert.Equal(t, "25", result["minimum_required"])
	assert.NotContains(t, result, "entries")

	notes := decoded["notes"].([]interface{})
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Pay at least 25.00")

	cardJSON := decoded["card"].(map[string]interface{})
	assert.Equal(t, "visa", cardJSON["id"])
}

func TestRenderer_TruncatedNote(t *testing.T) {
	card := testCard("1200", "24", "3")
	var buf bytes.Buffer

	result, err := payoff.ComputeScheduleWithin(card, models.MustAmount("110"), 2)
	require.NoError(t, err)
	require.True(t, result.Truncated)

	r := newRenderer(t, FormatText, "en", "", 0)
	require.NoError(t, r.Schedule(&buf, card, result))
	assert.Contains(t, buf.String(), "The schedule stops after 2 months with")
}

func TestRenderer_MinimumCSVWithDelimiter(t *testing.T) {
	card := testCard("1200", "24", "3")
	card.CreditLimit = models.MustAmount("5000")

	minimum, err := payoff.MinimumPayment(card)
	require.NoError(t, err)
	overview, err := payoff.Overview(card)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, "en", "", ';')
	require.NoError(t, r.Minimum(&buf, card, minimum, overview))

	out := lines(buf.String())
	assert.Equal(t, "field;value", out[0])
	assert.Contains(t, out, "minimum_payment;50.00")
	assert.Contains(t, out, "monthly_interest;24.00")
	assert.Contains(t, out, "daily_interest;0.79")
	assert.Contains(t, out, "utilization;24.00")
	assert.Contains(t, out, "available_credit;3800.00")
}

func TestRenderer_MinimumYAML(t *testing.T) {
	card := testCard("1200", "24", "3")
	minimum, err := payoff.MinimumPayment(card)
	require.NoError(t, err)
	overview, err := payoff.Overview(card)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatYAML, "en", "", 0)
	require.NoError(t, r.Minimum(&buf, card, minimum, overview))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "minimum", decoded["operation"])
	result := decoded["result"].(map[string]interface{})
	assert.Contains(t, result, "minimum_payment")
	assert.NotContains(t, result["overview"], "utilization_percent")
}

func TestRenderer_SolutionNotes(t *testing.T) {
	tests := []struct {
		name     string
		card     models.CreditCardSnapshot
		target   int
		contains string
	}{
		{name: "solved", card: testCard("1200", "24", "3"), target: 12, contains: "114.00"},
		{name: "unreachable", card: testCard("100", "3000", "3"), target: 1, contains: "A payment of 200.00 does not clear the balance within 1 months"},
		{name: "beyond the month cap", card: testCard("10000", "24", "0"), target: 100, contains: "A payment of 201.00 does not clear the balance within 100 months"},
		{name: "no balance", card: testCard("0", "24", "3"), target: 12, contains: "There is no balance to pay off."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solution, err := payoff.SolvePaymentForTargetMonths(tt.card, tt.target)
			require.NoError(t, err)

			var buf bytes.Buffer
			r := newRenderer(t, FormatText, "en", "", 0)
			require.NoError(t, r.Solution(&buf, tt.card, solution))
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestRenderer_ComparisonCSV(t *testing.T) {
	card := testCard("1200", "24", "3")
	results, err := payoff.CompareScenarios(card, []decimal.Decimal{models.MustAmount("20"), models.MustAmount("100")})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, "en", "", ',')
	require.NoError(t, r.Comparison(&buf, card, results))

	out := lines(buf.String())
	require.Len(t, out, 3)
	assert.Equal(t, "payment,outcome,months,total_paid,total_interest,payoff_date,minimum_required", out[0])
	assert.Equal(t, "20.00,insufficient_payment,0,,,,25.00", out[1])
	assert.Equal(t, "100.00,success,14,1385.98,185.98,2027-12-16,", out[2])
}

func TestRenderer_RecommendationsText(t *testing.T) {
	card := testCard("1200", "24", "3")
	recs, err := payoff.BuildRecommendations(card)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatText, "tr", "", 0)
	require.NoError(t, r.Recommendations(&buf, card, recs))

	out := buf.String()
	assert.Contains(t, out, "Ödeme önerileri")
	assert.Contains(t, out, "Minimum Ödeme")
	assert.Contains(t, out, "2x Minimum Ödeme")
	assert.Contains(t, out, "12 Ayda Bitir")
	assert.Contains(t, out, "6 Ayda Bitir")
}

func TestRenderer_RecommendationsEmpty(t *testing.T) {
	card := testCard("0", "24", "3")
	recs, err := payoff.BuildRecommendations(card)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatJSON, "en", "", 0)
	require.NoError(t, r.Recommendations(&buf, card, recs))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded["result"])
	assert.Equal(t, []interface{}{"No payment plan applies to this card."}, decoded["notes"])
}

func TestRenderer_GrowthCSV(t *testing.T) {
	card := testCard("1000", "24", "3")
	entries, err := payoff.ProjectGrowthWithoutPayments(card, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, "en", "", ',')
	require.NoError(t, r.Growth(&buf, card, entries))

	out := lines(buf.String())
	require.Len(t, out, 4)
	assert.Equal(t, "month,balance,interest_added,total_interest_accrued", out[0])
	assert.Equal(t, "1,1020.00,20.00,20.00", out[1])
	assert.True(t, strings.HasPrefix(out[3], "3,1061.21,"))
}

func TestRenderer_Ranking(t *testing.T) {
	high := testCard("5000", "30", "3")
	high.ID, high.Label = "high", "High rate"
	small := testCard("500", "20", "3")
	small.ID, small.Label = "small", "Small"

	ranking, err := payoff.RankDebtsByStrategy([]models.CreditCardSnapshot{small, high})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, "en", "", ',')
	require.NoError(t, r.Ranking(&buf, ranking))
	out := lines(buf.String())
	require.Len(t, out, 5)
	assert.Equal(t, "strategy,position,id,label,balance,annual_rate,priority", out[0])
	assert.Equal(t, "avalanche,1,high,High rate,5000.00,30,highest_rate", out[1])
	assert.Equal(t, "snowball,1,small,Small,500.00,20,lowest_balance", out[3])

	buf.Reset()
	r = newRenderer(t, FormatText, "tr", "", 0)
	require.NoError(t, r.Ranking(&buf, ranking))
	assert.Contains(t, buf.String(), "Çığ yöntemi")
	assert.Contains(t, buf.String(), "En düşük bakiye")
}

func TestRenderer_Savings(t *testing.T) {
	card := testCard("1200", "24", "3")
	extra := models.MustAmount("50")
	savings, err := payoff.CalculateInterestSavings(card, extra)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := newRenderer(t, FormatCSV, "en", "", ',')
	require.NoError(t, r.Savings(&buf, card, extra, savings))
	out := lines(buf.String())
	assert.Contains(t, out, "interest_saved,265.13")
	assert.Contains(t, out, "months_saved,20")
	assert.Contains(t, out, "percentage_saved,58.77")

	buf.Reset()
	unavailable, err := payoff.CalculateInterestSavings(testCard("0", "24", "3"), extra)
	require.NoError(t, err)
	r = newRenderer(t, FormatText, "en", "", 0)
	require.NoError(t, r.Savings(&buf, card, extra, unavailable))
	assert.Contains(t, buf.String(), "Interest savings cannot be computed for this card.")
}
