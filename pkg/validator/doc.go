// Package validator implements the input and split validation rules used
// before an expense, group or user profile is accepted.
//
// Every rule is a small Rule value holding a pure Check function together
// with a ValidationError describing the failure: the field, the Reason that
// names the rule, a default message, and an i18n translation key with its
// values. Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Rules
//
//   - ValidEmail        – <local>@<domain>.<tld> without whitespace or extra '@'
//   - ValidPassword     – at least 6 characters, counted as code points
//   - ValidName         – at least one character, no trimming
//   - ValidAmount       – finite and strictly greater than zero
//   - ValidSplitsSum    – |sum(splits) - total| < money.SplitTolerance
//
// NonNegativeSplits, ValidNameTrimmed, ValidCurrencyCode, NonNilUUID,
// MinLenSlice, MaxLenString and UniqueStringsFold are available for
// form-level rule sets.
//
// # Results
//
// Evaluate turns a single rule into a Result, which is either Valid or
// carries the failed ValidationError. The ValidateEmail, ValidatePassword,
// ValidateName, ValidateAmount and ValidateSplitsSum helpers evaluate the
// core rules with default field names:
//
//	res := validator.ValidateSplitsSum(100, []float64{40, 40})
//	if fail, ok := res.Failure(); ok {
//	    m, _ := validator.AsSplitMismatch(fail)
//	    // m.ObservedSum == 80, m.Total == 100, m.Delta == 20
//	}
//
// # Registry
//
// Registry groups named rule functions per entity type. It is an immutable
// value: Register returns a copy, so registries can be extended without
// touching existing ones and shared between goroutines.
//
// # Error Handling
//
// Business-rule failures are values, never panics. ValidationError unwraps to
// a per-rule sentinel (ErrMalformedEmail, ErrSplitsSumMismatch, ...) and
// ValidationErrors unwraps to all of them plus ErrValidationFailed, so
// errors.Is works at any level.
//
// All rules are stateless and safe for concurrent use.
package validator
