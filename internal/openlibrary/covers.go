package openlibrary

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultCoversURL is the Open Library covers host.
	DefaultCoversURL = "https://covers.openlibrary.org"

	// PlaceholderCoverURL is shown for docs without a cover_i.
	PlaceholderCoverURL = "https://via.placeholder.com/150x200?text=No+Cover"
)

// CoverSize selects one of the sizes served by the covers API.
type CoverSize string

const (
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// Covers builds cover image URLs. Images are referenced, never fetched.
type Covers struct {
	base string
}

// NewCovers returns a Covers rooted at base, or DefaultCoversURL when empty.
func NewCovers(base string) Covers {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultCoversURL
	}
	return Covers{base: base}
}

// URL returns the image URL for id at the given size, or the placeholder.
func (c Covers) URL(id CoverID, size CoverSize) string {
	if !id.Valid() {
		return PlaceholderCoverURL
	}
	base := c.base
	if base == "" {
		base = DefaultCoversURL
	}
	return fmt.Sprintf("%s/b/id/%s-%s.jpg", base, url.PathEscape(strings.TrimSpace(string(id))), size)
}
