package api

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/splitkit/pkg/entry"
)

// Verdict is the body of a validate response.
type Verdict struct {
	Valid  bool            `json:"valid"`
	Errors []entry.Message `json:"errors,omitempty"`
}

// ErrorResponse is the body of a request that could not be validated at all.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a transport level failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
