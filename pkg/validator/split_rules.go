package validator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/splitkit/pkg/money"
)

// SplitMismatch is the Detail of a ReasonSplitsSumMismatch error.
// Delta is the absolute difference between ObservedSum and Total.
type SplitMismatch struct {
	ObservedSum float64
	Total       float64
	Delta       float64
}

// AsSplitMismatch returns the mismatch detail carried by err, if any.
func AsSplitMismatch(err ValidationError) (SplitMismatch, bool) {
	m, ok := err.Detail.(SplitMismatch)
	return m, ok
}

// ValidSplitsSum checks that splits add up to total within money.SplitTolerance.
// An empty split set sums to zero. Negative contributions are not rejected
// here; combine with NonNegativeSplits for that.
func ValidSplitsSum(field string, total float64, splits []float64) Rule {
	return SplitsSumWithin(field, total, splits, money.DefaultTolerance())
}

// SplitsSumWithin is ValidSplitsSum with an explicit absolute tolerance.
func SplitsSumWithin(field string, total float64, splits []float64, tolerance decimal.Decimal) Rule {
	ok, mismatch := reconcile(total, splits, tolerance)

	return Rule{
		Check: func() bool {
			return ok
		},
		Error: ValidationError{
			Field:  field,
			Reason: ReasonSplitsSumMismatch,
			Message: fmt.Sprintf("splits sum to %s but total is %s",
				formatFloat(mismatch.ObservedSum), formatFloat(mismatch.Total)),
			TranslationKey: "validation.splits_sum_mismatch",
			TranslationValues: map[string]any{
				"field": field,
				"sum":   mismatch.ObservedSum,
				"total": mismatch.Total,
				"delta": mismatch.Delta,
			},
			Detail: mismatch,
		},
	}
}

func reconcile(total float64, splits []float64, tolerance decimal.Decimal) (bool, SplitMismatch) {
	if !money.IsFinite(total) || money.HasNonFinite(splits...) {
		var sum float64
		for _, s := range splits {
			sum += s
		}
		return false, SplitMismatch{ObservedSum: sum, Total: total, Delta: math.Abs(sum - total)}
	}

	sum, delta := money.Delta(total, splits)
	return money.WithinTolerance(delta, tolerance), SplitMismatch{
		ObservedSum: sum.InexactFloat64(),
		Total:       total,
		Delta:       delta.InexactFloat64(),
	}
}

// NonNegativeSplits rejects any negative or non-finite contribution.
func NonNegativeSplits(field string, splits []float64) Rule {
	index := -1
	for i, s := range splits {
		if !money.IsFinite(s) || s < 0 {
			index = i
			break
		}
	}

	return Rule{
		Check: func() bool {
			return index < 0
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonNegativeSplit,
			Message:        fmt.Sprintf("contribution #%d cannot be negative", index+1),
			TranslationKey: "validation.negative_split",
			TranslationValues: map[string]any{
				"field":    field,
				"position": index + 1,
			},
		},
	}
}

func formatFloat(v float64) string {
	if !money.IsFinite(v) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).String()
}
