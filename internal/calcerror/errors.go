// Package calcerror defines the error types returned when a caller breaks the
// contract of a calculation or supplies unusable card data.
package calcerror

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError represents a value the engine refuses to calculate with,
// such as a negative balance or a non-positive month count.
type InvalidInputError struct {
	Operation string
	Field     string
	Value     string
	Reason    string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid %s='%s': %s",
		e.Operation, e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInvalidInput builds an InvalidInputError, formatting value with %v.
func NewInvalidInput(operation, field string, value interface{}, reason string) *InvalidInputError {
	return &InvalidInputError{
		Operation: operation,
		Field:     field,
		Value:     fmt.Sprintf("%v", value),
		Reason:    reason,
	}
}

// CardNotFoundError is returned when a portfolio has no card with the
// requested ID.
type CardNotFoundError struct {
	FilePath string
	CardID   string
}

func (e *CardNotFoundError) Error() string {
	return fmt.Sprintf("card '%s' not found in %s", e.CardID, e.FilePath)
}

// InvalidFormatError represents a portfolio file that does not conform to
// the expected YAML or CSV layout.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s: %v",
			e.FilePath, e.Msg, e.ExpectedFormat, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
