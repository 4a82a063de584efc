package validator

// Default field names used by the single-value helpers below.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldAmount   = "amount"
	FieldSplits   = "splits"
)

// ValidateEmail evaluates ValidEmail.
func ValidateEmail(value string) Result {
	return Evaluate(ValidEmail(FieldEmail, value))
}

// ValidatePassword evaluates ValidPassword.
func ValidatePassword(value string) Result {
	return Evaluate(ValidPassword(FieldPassword, value))
}

// ValidateName evaluates ValidName.
func ValidateName(value string) Result {
	return Evaluate(ValidName(FieldName, value))
}

// ValidateAmount evaluates ValidAmount.
func ValidateAmount(value float64) Result {
	return Evaluate(ValidAmount(FieldAmount, value))
}

// ValidateSplitsSum evaluates ValidSplitsSum.
func ValidateSplitsSum(total float64, splits []float64) Result {
	return Evaluate(ValidSplitsSum(FieldSplits, total, splits))
}
