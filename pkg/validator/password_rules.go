package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinPasswordLength is the default minimum password length in characters.
const MinPasswordLength = 6

// ValidPassword requires at least MinPasswordLength characters.
func ValidPassword(field, value string) Rule {
	return PasswordMinLength(field, value, MinPasswordLength)
}

// PasswordMinLength counts Unicode code points, not bytes, so "пароль"
// is six characters long.
func PasswordMinLength(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonPasswordTooShort,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.password_too_short",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
