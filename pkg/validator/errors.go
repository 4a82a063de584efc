package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)

// Rule failures. Each rule reports exactly one of these.
var (
	ErrMalformedEmail     = errors.New("malformed email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmptyName          = errors.New("empty name")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrSplitsSumMismatch  = errors.New("splits do not add up to total")
	ErrNegativeSplit      = errors.New("split contribution is negative")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrNilIdentifier      = errors.New("identifier is nil")
	ErrDuplicateValue     = errors.New("duplicate value")
	ErrValueTooLong       = errors.New("value too long")
	ErrCollectionTooSmall = errors.New("too few items")
)

// Registry errors. These are programming errors, not validation outcomes.
var (
	ErrInvalidRule = errors.New("invalid rule registration")
	ErrRuleExists  = errors.New("rule already registered")
	ErrUnknownRule = errors.New("unknown rule")
)
