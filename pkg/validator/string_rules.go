package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidName requires a non-empty value. A whitespace-only name passes; use
// ValidNameTrimmed to reject it.
func ValidName(field, value string) Rule {
	return nameRule(field, func() bool {
		return utf8.RuneCountInString(value) >= 1
	})
}

// ValidNameTrimmed is ValidName applied after trimming surrounding whitespace.
func ValidNameTrimmed(field, value string) Rule {
	return nameRule(field, func() bool {
		return strings.TrimSpace(value) != ""
	})
}

func nameRule(field string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonEmptyName,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString limits value to max characters.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonValueTooLong,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
