// Package i18n renders user-facing messages from translation keys.
//
// Validation rules only carry a translation key and a map of values; this
// package turns them into text for the caller's language. Catalogs are nested
// maps keyed by language code, loaded through a TranslationAdapter from YAML
// or JSON:
//
//	en:
//	  validation:
//	    positive_amount: "%{field} must be greater than zero"
//
// Keys use dot notation ("validation.positive_amount") and placeholders use
// the %{name} form. Numeric values are formatted for the target locale with
// golang.org/x/text/message, and the best supported language for an
// Accept-Language header is chosen with golang.org/x/text/language.
//
// The default catalogs for English and German are embedded; see Default.
//
// A Translator is immutable after NewTranslator returns and is safe for
// concurrent use.
package i18n
