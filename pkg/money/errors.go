package money

import "errors"

var (
	// ErrNonFinite is returned when a NaN or infinite value is used as an amount.
	ErrNonFinite = errors.New("amount must be a finite number")

	// ErrInvalidTolerance is returned when a tolerance is negative or cannot be parsed.
	ErrInvalidTolerance = errors.New("invalid split tolerance")
)
