package search

import "errors"

// User-facing messages for each failure class. They are fixed; causes are
// only logged.
const (
	MessageEmptyQuery = "Please enter a book title to search."
	MessageNoResults  = "No books found. Try another title."
	MessageTransport  = "Network error! Please try again later."
)

var (
	// ErrEmptyQuery is a local validation failure; no request is made.
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoResults means the request succeeded but matched nothing.
	ErrNoResults = errors.New("no books found")
	// ErrTransport covers unreachable hosts, timeouts, HTTP error statuses,
	// and undecodable bodies.
	ErrTransport = errors.New("search request failed")
)

// Message maps an error from this package to its user-facing text.
// Unrecognised errors are treated as transport failures.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyQuery):
		return MessageEmptyQuery
	case errors.Is(err, ErrNoResults):
		return MessageNoResults
	default:
		return MessageTransport
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "succeeded"
	case errors.Is(err, ErrEmptyQuery):
		return "empty_query"
	case errors.Is(err, ErrNoResults):
		return "no_results"
	default:
		return "transport_error"
	}
}
