package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitTolerance is the maximum absolute deviation, in currency units,
// accepted between the sum of a split set and the expense total. It absorbs
// cent-level rounding from UI input; it is not a business allowance for
// underpayment.
const SplitTolerance = 0.01

var defaultTolerance = decimal.NewFromFloat(SplitTolerance)

// DefaultTolerance returns SplitTolerance as a decimal.
func DefaultTolerance() decimal.Decimal {
	return defaultTolerance
}

// ParseTolerance parses a tolerance such as "0.01". Negative values are rejected.
func ParseTolerance(s string) (decimal.Decimal, error) {
	tol, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Join(ErrInvalidTolerance, err)
	}
	if tol.IsNegative() {
		return decimal.Decimal{}, errors.Join(ErrInvalidTolerance, fmt.Errorf("negative tolerance %s", s))
	}
	return tol, nil
}

// Sum adds values exactly. An empty input sums to zero.
// Values must be finite; use HasNonFinite first when the input is untrusted.
func Sum(values ...float64) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum
}

// Delta returns the exact sum of splits and its absolute distance from total.
func Delta(total float64, splits []float64) (sum, delta decimal.Decimal) {
	sum = Sum(splits...)
	delta = sum.Sub(decimal.NewFromFloat(total)).Abs()
	return sum, delta
}

// WithinTolerance reports whether |delta| is strictly below tolerance.
func WithinTolerance(delta, tolerance decimal.Decimal) bool {
	return delta.Abs().LessThan(tolerance)
}

// HasNonFinite reports whether any of values is NaN or infinite.
func HasNonFinite(values ...float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return true
		}
	}
	return false
}
