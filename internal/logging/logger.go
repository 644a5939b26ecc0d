// Package logging provides the structured logging abstraction used by the
// command layer. The calculation engine itself never logs.
package logging

import "fjacquet/card-payoff/internal/models"

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// CardFields describes a card snapshot for log context. Amounts are logged
// as fixed two-place strings.
func CardFields(card models.CreditCardSnapshot) []Field {
	fields := []Field{
		{Key: FieldBalance, Value: card.Balance.StringFixed(2)},
		{Key: FieldAnnualRate, Value: card.AnnualInterestRatePercent.String()},
	}
	if card.ID != "" {
		fields = append(fields, Field{Key: FieldCardID, Value: card.ID})
	}
	if card.Label != "" {
		fields = append(fields, Field{Key: FieldCardLabel, Value: card.Label})
	}
	return fields
}
