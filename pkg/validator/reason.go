package validator

// Reason identifies which named rule produced a ValidationError.
type Reason string

const (
	ReasonMalformedEmail     Reason = "malformed_email"
	ReasonPasswordTooShort   Reason = "password_too_short"
	ReasonEmptyName          Reason = "empty_name"
	ReasonNonPositiveAmount  Reason = "non_positive_amount"
	ReasonSplitsSumMismatch  Reason = "splits_sum_mismatch"
	ReasonNegativeSplit      Reason = "negative_split"
	ReasonInvalidCurrency    Reason = "invalid_currency"
	ReasonNilIdentifier      Reason = "nil_identifier"
	ReasonDuplicateValue     Reason = "duplicate_value"
	ReasonValueTooLong       Reason = "value_too_long"
	ReasonCollectionTooSmall Reason = "collection_too_small"
)

var reasonErrors = map[Reason]error{
	ReasonMalformedEmail:     ErrMalformedEmail,
	ReasonPasswordTooShort:   ErrPasswordTooShort,
	ReasonEmptyName:          ErrEmptyName,
	ReasonNonPositiveAmount:  ErrNonPositiveAmount,
	ReasonSplitsSumMismatch:  ErrSplitsSumMismatch,
	ReasonNegativeSplit:      ErrNegativeSplit,
	ReasonInvalidCurrency:    ErrInvalidCurrency,
	ReasonNilIdentifier:      ErrNilIdentifier,
	ReasonDuplicateValue:     ErrDuplicateValue,
	ReasonValueTooLong:       ErrValueTooLong,
	ReasonCollectionTooSmall: ErrCollectionTooSmall,
}

// Err returns the sentinel error for the reason, or ErrValidationFailed for
// reasons registered outside this package.
func (r Reason) Err() error {
	if err, ok := reasonErrors[r]; ok {
		return err
	}
	return ErrValidationFailed
}

func (r Reason) String() string { return string(r) }
