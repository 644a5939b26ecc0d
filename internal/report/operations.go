package report

import (
	"io"

	"fjacquet/card-payoff/internal/models"
	"fjacquet/card-payoff/internal/payoff"

	"github.com/shopspring/decimal"
)

type scheduleRow struct {
	Month     int    `csv:"month"`
	Payment   string `csv:"payment"`
	Interest  string `csv:"interest"`
	Principal string `csv:"principal"`
	Remaining string `csv:"remaining_balance"`
}

type comparisonRow struct {
	Payment         string `csv:"payment"`
	Outcome         string `csv:"outcome"`
	Months          int    `csv:"months"`
	TotalPaid       string `csv:"total_paid"`
	TotalInterest   string `csv:"total_interest"`
	PayoffDate      string `csv:"payoff_date"`
	MinimumRequired string `csv:"minimum_required"`
}

type recommendationRow struct {
	Kind          string `csv:"kind"`
	Payment       string `csv:"payment"`
	Months        int    `csv:"months"`
	TotalPaid     string `csv:"total_paid"`
	TotalInterest string `csv:"total_interest"`
	PayoffDate    string `csv:"payoff_date"`
}

type growthRow struct {
	Month         int    `csv:"month"`
	Balance       string `csv:"balance"`
	InterestAdded string `csv:"interest_added"`
	TotalInterest string `csv:"total_interest_accrued"`
}

type rankingRow struct {
	Strategy   string `csv:"strategy"`
	Position   int    `csv:"position"`
	ID         string `csv:"id"`
	Label      string `csv:"label"`
	Balance    string `csv:"balance"`
	AnnualRate string `csv:"annual_rate"`
	Priority   string `csv:"priority"`
}

// minimumResult is the JSON/YAML payload of the minimum command.
type minimumResult struct {
	MinimumPayment decimal.Decimal     `json:"minimum_payment" yaml:"minimum_payment"`
	Overview       payoff.CardOverview `json:"overview" yaml:"overview"`
}

// savingsResult is the JSON/YAML payload of the savings command.
type savingsResult struct {
	ExtraPayment decimal.Decimal `json:"extra_payment" yaml:"extra_payment"`
	payoff.InterestSavings `yaml:",inline"`
}

func cardLines(card models.CreditCardSnapshot) []Line {
	return []Line{
		{Label: LabelBalance, Value: Amount(card.Balance)},
		{Label: LabelAnnualRate, Value: Percent(card.AnnualInterestRatePercent)},
	}
}

func summaryLines(summary *payoff.ScheduleSummary) []Line {
	if summary == nil {
		return nil
	}
	return []Line{
		{Label: LabelTotalPayments, Value: Count(summary.TotalPayments)},
		{Label: LabelTotalPaid, Value: Amount(summary.TotalAmountPaid)},
		{Label: LabelTotalInterest, Value: Amount(summary.TotalInterestPaid)},
		{Label: LabelPayoffDate, Value: Date(summary.PayoffDate)},
	}
}

func scheduleNotes(card models.CreditCardSnapshot, result payoff.ScheduleResult) []Note {
	switch {
	case !result.IsSuccess():
		return []Note{{Code: NoteInsufficientPayment, Args: []Value{Amount(result.PaymentAmount), Amount(result.MinimumRequired)}}}
	case result.Truncated:
		last := result.Entries[len(result.Entries)-1]
		return []Note{{Code: NoteTruncated, Args: []Value{Count(result.Months()), Amount(last.RemainingBalance)}}}
	case !card.Balance.IsPositive():
		return []Note{{Code: NoteZeroBalance}}
	}
	return nil
}

// Schedule renders an amortization schedule.
func (r *Renderer) Schedule(w io.Writer, card models.CreditCardSnapshot, result payoff.ScheduleResult) error {
	rows := make([]scheduleRow, len(result.Entries))
	for i, e := range result.Entries {
		rows[i] = scheduleRow{
			Month:     e.MonthIndex,
			Payment:   r.amount(Amount(e.PaymentAmount)),
			Interest:  r.amount(Amount(e.InterestPortion)),
			Principal: r.amount(Amount(e.PrincipalPortion)),
			Remaining: r.amount(Amount(e.RemainingBalance)),
		}
	}

	summary := append(cardLines(card), Line{Label: LabelPayment, Value: Amount(result.PaymentAmount)})
	summary = append(summary, summaryLines(result.Summary)...)

	return r.Render(w, Document{
		Title:   TitleSchedule,
		Card:    &card,
		Result:  result,
		Summary: summary,
		Rows:    rows,
		Notes:   scheduleNotes(card, result),
	})
}

// Minimum renders the minimum payment together with the card overview.
func (r *Renderer) Minimum(w io.Writer, card models.CreditCardSnapshot, minimum decimal.Decimal, overview payoff.CardOverview) error {
	summary := append(cardLines(card),
		Line{Label: LabelMinimumRate, Value: Percent(card.MinimumPaymentRatePercent)},
		Line{Label: LabelMinimumPayment, Value: Amount(minimum)},
		Line{Label: LabelMonthlyInterest, Value: Amount(overview.MonthlyInterest)},
		Line{Label: LabelDailyInterest, Value: Amount(overview.DailyInterest)},
	)
	if overview.UtilizationPercent != nil {
		summary = append(summary, Line{Label: LabelUtilization, Value: Percent(*overview.UtilizationPercent)})
	}
	if overview.AvailableCredit != nil {
		summary = append(summary, Line{Label: LabelAvailableCredit, Value: Amount(*overview.AvailableCredit)})
	}

	return r.Render(w, Document{
		Title:   TitleMinimum,
		Card:    &card,
		Result:  minimumResult{MinimumPayment: minimum, Overview: overview},
		Summary: summary,
	})
}

// Solution renders the answer of the inverse solver.
func (r *Renderer) Solution(w io.Writer, card models.CreditCardSnapshot, solution payoff.Solution) error {
	summary := append(cardLines(card), Line{Label: LabelTargetMonths, Value: Count(solution.TargetMonths)})

	var notes []Note
	if solution.Found() {
		summary = append(summary,
			Line{Label: LabelPayment, Value: Amount(solution.Payment)},
			Line{Label: LabelMonths, Value: Count(solution.Months)},
		)
		if !solution.TargetReached {
			notes = append(notes, Note{Code: NoteTargetNotReached, Args: []Value{Amount(solution.Payment), Count(solution.TargetMonths)}})
		}
	} else {
		notes = append(notes, Note{Code: NoteNoSolution})
	}

	return r.Render(w, Document{
		Title:   TitleSolve,
		Card:    &card,
		Result:  solution,
		Summary: summary,
		Notes:   notes,
	})
}

// Comparison renders one row per candidate payment.
func (r *Renderer) Comparison(w io.Writer, card models.CreditCardSnapshot, results []payoff.ScheduleResult) error {
	rows := make([]comparisonRow, len(results))
	for i, result := range results {
		row := comparisonRow{
			Payment: r.amount(Amount(result.PaymentAmount)),
			Outcome: r.enum(outcomePrefix, string(result.Outcome)),
		}
		if result.IsSuccess() {
			row.Months = result.Summary.TotalPayments
			row.TotalPaid = r.amount(Amount(result.Summary.TotalAmountPaid))
			row.TotalInterest = r.amount(Amount(result.Summary.TotalInterestPaid))
			row.PayoffDate = Date(result.Summary.PayoffDate).plain(r.loc)
		} else {
			row.MinimumRequired = r.amount(Amount(result.MinimumRequired))
		}
		rows[i] = row
	}

	return r.Render(w, Document{
		Title:   TitleCompare,
		Card:    &card,
		Result:  results,
		Summary: cardLines(card),
		Rows:    rows,
	})
}

// Recommendations renders the suggested payment plans.
func (r *Renderer) Recommendations(w io.Writer, card models.CreditCardSnapshot, recommendations []payoff.Recommendation) error {
	rows := make([]recommendationRow, len(recommendations))
	for i, rec := range recommendations {
		rows[i] = recommendationRow{
			Kind:          r.enum(kindPrefix, string(rec.Kind)),
			Payment:       r.amount(Amount(rec.PaymentAmount)),
			Months:        rec.TotalPayments,
			TotalPaid:     r.amount(Amount(rec.TotalAmountPaid)),
			TotalInterest: r.amount(Amount(rec.TotalInterestPaid)),
			PayoffDate:    Date(rec.PayoffDate).plain(r.loc),
		}
	}

	var notes []Note
	if len(recommendations) == 0 {
		notes = append(notes, Note{Code: NoteNoRecommendations})
	}

	return r.Render(w, Document{
		Title:   TitleRecommend,
		Card:    &card,
		Result:  recommendations,
		Summary: cardLines(card),
		Rows:    rows,
		Notes:   notes,
	})
}

// Growth renders the no-payment projection.
func (r *Renderer) Growth(w io.Writer, card models.CreditCardSnapshot, entries []payoff.DebtGrowthEntry) error {
	rows := make([]growthRow, len(entries))
	for i, e := range entries {
		rows[i] = growthRow{
			Month:         e.MonthIndex,
			Balance:       r.amount(Amount(e.Balance)),
			InterestAdded: r.amount(Amount(e.InterestAdded)),
			TotalInterest: r.amount(Amount(e.TotalInterestAccrued)),
		}
	}

	return r.Render(w, Document{
		Title:   TitleGrowth,
		Card:    &card,
		Result:  entries,
		Summary: cardLines(card),
		Rows:    rows,
	})
}

// Ranking renders both strategy orderings in one table.
func (r *Renderer) Ranking(w io.Writer, ranking payoff.StrategyRanking) error {
	var rows []rankingRow
	for _, strategy := range []payoff.Strategy{payoff.StrategyAvalanche, payoff.StrategySnowball} {
		for _, debt := range ranking.Order(strategy) {
			rows = append(rows, rankingRow{
				Strategy:   r.enum(strategyPrefix, string(strategy)),
				Position:   debt.Position,
				ID:         debt.ID,
				Label:      debt.Label,
				Balance:    r.amount(Amount(debt.Balance)),
				AnnualRate: debt.AnnualInterestRatePercent.String(),
				Priority:   r.enum(priorityPrefix, string(debt.Priority)),
			})
		}
	}

	return r.Render(w, Document{
		Title:  TitleRank,
		Result: ranking,
		Rows:   rows,
	})
}

// Savings renders the minimum-only versus accelerated comparison.
func (r *Renderer) Savings(w io.Writer, card models.CreditCardSnapshot, extra decimal.Decimal, savings payoff.InterestSavings) error {
	summary := append(cardLines(card), Line{Label: LabelExtraPayment, Value: Amount(extra)})

	var notes []Note
	if savings.Outcome == payoff.SavingsOutcomeComputed {
		summary = append(summary,
			Line{Label: LabelMinimumPlan, Value: Amount(savings.Minimum.MonthlyPayment)},
			Line{Label: LabelAcceleratedPlan, Value: Amount(savings.Accelerated.MonthlyPayment)},
			Line{Label: LabelInterestSaved, Value: Amount(savings.InterestSaved)},
			Line{Label: LabelMonthsSaved, Value: Count(savings.MonthsSaved)},
			Line{Label: LabelPercentSaved, Value: Percent(savings.PercentageSaved)},
		)
	} else {
		notes = append(notes, Note{Code: NoteSavingsUnavailable})
	}

	return r.Render(w, Document{
		Title:   TitleSavings,
		Card:    &card,
		Result:  savingsResult{ExtraPayment: extra, InterestSavings: savings},
		Summary: summary,
		Notes:   notes,
	})
}
