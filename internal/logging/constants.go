package logging

// Standardized field names for structured logging, so that every command
// reports the same keys for the same facts.
const (
	FieldOperation    = "operation"
	FieldCardID       = "card_id"
	FieldCardLabel    = "card_label"
	FieldBalance      = "balance"
	FieldAnnualRate   = "annual_rate_percent"
	FieldPayment      = "payment"
	FieldTargetMonths = "target_months"
	FieldMonths       = "months"
	FieldOutcome      = "outcome"
	FieldCount        = "count"
	FieldFile         = "file_path"
	FieldFormat       = "format"
	FieldLanguage     = "language"
	FieldDelimiter    = "delimiter"
	FieldError        = "error"
	FieldInvalidInput = "invalid_field"
)
