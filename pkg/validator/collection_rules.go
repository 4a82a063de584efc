package validator

import (
	"fmt"
	"strings"
)

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonCollectionTooSmall,
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// UniqueStringsFold rejects values that repeat, compared case-insensitively.
// Empty strings are ignored.
func UniqueStringsFold(field string, values []string) Rule {
	dup := ""
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if seen[key] {
			dup = v
			break
		}
		seen[key] = true
	}

	return Rule{
		Check: func() bool {
			return dup == ""
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonDuplicateValue,
			Message:        fmt.Sprintf("contains duplicate value %q", dup),
			TranslationKey: "validation.duplicate",
			TranslationValues: map[string]any{
				"field": field,
				"value": dup,
			},
		},
	}
}
