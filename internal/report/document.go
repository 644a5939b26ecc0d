// Package report turns engine results into text, JSON, YAML or CSV for the
// command line. Wording comes from a localized message catalog.
package report

import (
	"strconv"
	"time"

	"fjacquet/card-payoff/internal/currencyutils"
	"fjacquet/card-payoff/internal/dateutils"
	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

type valueKind int

const (
	kindText valueKind = iota
	kindAmount
	kindPercent
	kindCount
	kindDate
	kindCode
)

// Value is one displayable figure. Amounts are formatted with the
// configured currency only in text output.
type Value struct {
	kind   valueKind
	text   string
	amount decimal.Decimal
	count  int
	date   time.Time
	code   MessageCode
}

// Text wraps a literal string.
func Text(s string) Value { return Value{kind: kindText, text: s} }

// Amount wraps a monetary amount.
func Amount(d decimal.Decimal) Value { return Value{kind: kindAmount, amount: d} }

// Percent wraps a percentage.
func Percent(d decimal.Decimal) Value { return Value{kind: kindPercent, amount: d} }

// Count wraps an integer such as a number of months.
func Count(n int) Value { return Value{kind: kindCount, count: n} }

// Date wraps a calendar date.
func Date(t time.Time) Value { return Value{kind: kindDate, date: t} }

// Code wraps a catalog entry, resolved at render time.
func Code(c MessageCode) Value { return Value{kind: kindCode, code: c} }

func (v Value) format(loc Localizer, currency string) string {
	switch v.kind {
	case kindAmount:
		return currencyutils.FormatAmount(v.amount, currency)
	case kindPercent:
		return currencyutils.FormatPercent(v.amount)
	case kindCount:
		return strconv.Itoa(v.count)
	case kindDate:
		return dateutils.ToISODate(v.date)
	case kindCode:
		return loc.Message(v.code)
	default:
		return v.text
	}
}

// argument is the value as a message argument: counts stay integers for %d
// verbs, everything else is its display text.
func (v Value) argument(loc Localizer, currency string) interface{} {
	if v.kind == kindCount {
		return v.count
	}
	return v.format(loc, currency)
}

// plain formats a value for machine-readable output: no currency symbol.
func (v Value) plain(loc Localizer) string {
	switch v.kind {
	case kindAmount:
		return v.amount.StringFixed(models.ReportingPlaces)
	case kindPercent:
		return v.amount.StringFixed(models.ReportingPlaces)
	case kindCode:
		return string(v.code)
	default:
		return v.format(loc, "")
	}
}

// Line is a labelled summary figure.
type Line struct {
	Label MessageCode
	Value Value
}

// Note is a localized remark with format arguments.
type Note struct {
	Code MessageCode
	Args []Value
}

// Document is the renderer-neutral form of one command's output.
type Document struct {
	Title MessageCode
	Card  *models.CreditCardSnapshot

	// Result is encoded as-is for JSON and YAML.
	Result interface{}

	// Summary lines are printed above the table in text output and make up
	// the CSV output when Rows is nil.
	Summary []Line

	// Rows is a slice of csv-tagged structs, printed as a table.
	Rows interface{}

	Notes []Note
}
