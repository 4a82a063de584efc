package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/splitkit/pkg/money"
)

var (
	// ISO 4217 currency codes - subset for common international commerce
	validCurrencyCodes = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true, "AUD": true, "CAD": true,
		"CHF": true, "CNY": true, "SEK": true, "NZD": true, "MXN": true, "SGD": true,
		"HKD": true, "NOK": true, "KRW": true, "TRY": true, "INR": true, "BRL": true,
		"ZAR": true, "PLN": true, "CZK": true, "HUF": true, "ILS": true, "CLP": true,
		"PHP": true, "AED": true, "COP": true, "SAR": true, "MYR": true, "RON": true,
		"THB": true, "BGN": true, "ISK": true, "DKK": true, "UAH": true, "IDR": true,
	}

	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidAmount requires a finite amount strictly greater than zero. NaN and
// infinities are rejected explicitly rather than by the accident of IEEE-754
// comparisons.
func ValidAmount(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return money.IsFinite(value) && value > 0
		},
		Error: positiveAmountError(field),
	}
}

// PositiveAmount is ValidAmount for an already constructed money.Amount.
func PositiveAmount(field string, value money.Amount) Rule {
	return Rule{
		Check: value.IsPositive,
		Error: positiveAmountError(field),
	}
}

func positiveAmountError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Reason:         ReasonNonPositiveAmount,
		Message:        "amount must be positive",
		TranslationKey: "validation.positive_amount",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// ValidCurrencyCode validates that a string is a known ISO 4217 currency code.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			upper := strings.ToUpper(value)
			return currencyCodeRegex.MatchString(upper) && validCurrencyCodes[upper]
		},
		Error: ValidationError{
			Field:          field,
			Reason:         ReasonInvalidCurrency,
			Message:        "must be a valid ISO 4217 currency code",
			TranslationKey: "validation.currency_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
