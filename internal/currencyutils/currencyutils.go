// Package currencyutils parses user-entered amounts and rates and formats
// amounts for display.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/card-payoff/internal/models"

	"github.com/shopspring/decimal"
)

var (
	currencyCodes   = regexp.MustCompile(`(?i)\b(CHF|EUR|USD|GBP|TRY|TL)\b`)
	currencySymbols = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)
)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1'234.56", "₺1.200,50"
// and "CHF 123.45". An empty string parses as zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := models.NewAmountFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParsePercent parses a rate such as "24", "24.5%" or "%3,5".
func ParsePercent(rateStr string) (decimal.Decimal, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(rateStr), "%", "")
	rate, err := ParseAmount(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse rate '%s': %w", rateStr, err)
	}
	return rate, nil
}

// StandardizeAmount converts various currency string formats to a standard
// format that can be parsed by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyCodes.ReplaceAllString(amountStr, "")
	amountStr = currencySymbols.ReplaceAllString(amountStr, "")

	// Apostrophes are Swiss thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	hasComma := strings.Contains(amountStr, ",")
	hasDot := strings.Contains(amountStr, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case hasComma:
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount formats a decimal amount with two decimal places and the
// given currency. Returns strings like "CHF 1234.56", "€1234.56" or "₺1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := amount.StringFixed(2)

	if currency != "" {
		switch strings.ToUpper(currency) {
		case "EUR":
			return "€" + formattedAmount
		case "USD":
			return "$" + formattedAmount
		case "GBP":
			return "£" + formattedAmount
		case "TRY":
			return "₺" + formattedAmount
		case "CHF":
			return "CHF " + formattedAmount
		default:
			return currency + " " + formattedAmount
		}
	}

	return formattedAmount
}

// FormatPercent formats a percentage with two decimal places, e.g. "58.77%".
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(2) + "%"
}
