// Package requestid tags every HTTP request with a correlation id.
//
// Middleware accepts a client supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-]; anything else is replaced with a fresh UUID. The id is
// echoed in the response header and available through FromContext.
//
// LogExtractor plugs into logger.WithContextExtractors so records logged with
// a request context carry a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r.Use(requestid.Middleware)
package requestid
