package api

import "errors"

// ErrNilValidator is returned by NewRouter without a validator.
var ErrNilValidator = errors.New("api: validator is required")

// Error codes used in ErrorDetail.Code.
const (
	CodeMalformedBody = "malformed_body"
	CodeBodyTooLarge  = "body_too_large"
	CodeInternal      = "internal_error"
)
