// Package api exposes the entry validators over HTTP.
//
// Routes:
//
//	POST /v1/validate/profile
//	POST /v1/validate/group
//	POST /v1/validate/expense
//	GET  /v1/rules
//	GET  /health
//
// A validate endpoint decodes one JSON record and answers 200 {"valid":true}
// when every rule passes, or 422 with the failed rules rendered in the
// language negotiated from Accept-Language:
//
//	{"valid":false,"errors":[{"field":"splits","reason":"splits_sum_mismatch","message":"..."}]}
//
// Malformed bodies get 400 and oversized bodies 413, both with an
// {"error":{"code":...,"message":...}} body.
package api
