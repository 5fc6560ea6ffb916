package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport covers network-level failures: connection refused,
	// timeouts, non-2xx responses.
	ErrTransport = errors.New("transport failure")

	// ErrDecode marks a response that arrived but could not be parsed.
	ErrDecode = errors.New("malformed response")

	// ErrInsufficientData is a valid empty result, not a fault.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrActionInFlight guards against re-triggering a mutation while
	// a previous call is still outstanding.
	ErrActionInFlight = errors.New("action already in flight")
)
