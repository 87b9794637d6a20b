package entities

import "errors"

// Terminal failure classes surfaced to the API layer. The upstream
// client wraps its errors with one of these sentinels so handlers can
// pick a status code with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMissingCredential   = errors.New("weather API key is not configured")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
