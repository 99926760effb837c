// Package openlibrary provides an HTTP client for the Open Library search API.
//
// Only GET /search.json is used. The title filter goes in the "title" query
// parameter and is always percent-encoded through url.Values, so titles with
// '&', '#', or '?' reach the server intact. Only the "docs" array of the
// response is decoded.
//
// Requests carry Accept: application/json and a bookfinder User-Agent. They
// pass through a token-bucket limiter (golang.org/x/time/rate) that is
// generous enough never to throttle a person typing. There is no retry: every
// Search call is exactly one HTTP request.
//
// Errors are wrapped with the failing step ("execute request", "decode
// response", "api ... returned status N") so callers can log the cause.
// Callers decide what the user sees.
//
// Cover images are never downloaded. Covers.URL builds the medium and large
// image URLs, or falls back to PlaceholderCoverURL.
package openlibrary
