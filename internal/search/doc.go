// Package search runs book-title searches.
//
// QueryStore keeps the live query text and remembers the last submitted
// query across restarts. Workflow turns a submission into exactly one
// request against an openlibrary.Searcher and records the outcome in a
// state.Session:
//
//	Begin   validate; remember (user submissions only); status -> Loading
//	Fetch   one GET; no session writes
//	Apply   results (capped at MaxResults) or a fixed user-facing message
//
// Failures map to three messages: MessageEmptyQuery for blank input (no
// request is made), MessageNoResults when the source returns zero docs, and
// MessageTransport for everything else. Causes are logged, never shown.
//
// CardFor and DetailFor shape a doc for display, substituting placeholders
// for absent fields.
package search
