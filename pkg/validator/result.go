package validator

// Result is the outcome of a single rule: Valid, or Invalid with the
// ValidationError describing which rule failed.
type Result struct {
	failure *ValidationError
}

// Valid is the successful Result.
var Valid = Result{}

// Invalid builds a failed Result from err.
func Invalid(err ValidationError) Result {
	return Result{failure: &err}
}

// Evaluate runs a single rule.
func Evaluate(rule Rule) Result {
	if rule.Check() {
		return Valid
	}
	return Invalid(rule.Error)
}

func (r Result) OK() bool { return r.failure == nil }

// Reason returns the failed rule, or an empty Reason when valid.
func (r Result) Reason() Reason {
	if r.failure == nil {
		return ""
	}
	return r.failure.Reason
}

// Failure returns the ValidationError and true when the result is invalid.
func (r Result) Failure() (ValidationError, bool) {
	if r.failure == nil {
		return ValidationError{}, false
	}
	return *r.failure, true
}

// Err returns nil for a valid result and ValidationErrors otherwise, so the
// value composes with Apply and ExtractValidationErrors.
func (r Result) Err() error {
	if r.failure == nil {
		return nil
	}
	return ValidationErrors{*r.failure}
}
