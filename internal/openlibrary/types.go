package openlibrary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SearchResponse mirrors the subset of /search.json that bookfinder reads.
// Every other top-level field (numFound, start, q, ...) is ignored.
type SearchResponse struct {
	Docs []Doc `json:"docs"`
}

// Doc describes one matched work.
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name,omitempty"`
	CoverID          CoverID  `json:"cover_i,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	Publisher        []string `json:"publisher,omitempty"`
	Subject          []string `json:"subject,omitempty"`
}

// HasCover reports whether the doc references a cover image.
func (d Doc) HasCover() bool {
	return d.CoverID.Valid()
}

// HasYear reports whether a first publication year was supplied.
func (d Doc) HasYear() bool {
	return d.FirstPublishYear > 0
}

// CoverID is the opaque cover identifier. Open Library sends an integer, but
// mirrors and older dumps send strings, so both are accepted.
type CoverID string

// Valid reports whether the identifier is present.
func (c CoverID) Valid() bool {
	return strings.TrimSpace(string(c)) != ""
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (c *CoverID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode cover_i: %w", err)
		}
		*c = CoverID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("decode cover_i: %w", err)
	}
	*c = CoverID(n.String())
	return nil
}
