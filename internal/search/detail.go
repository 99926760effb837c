package search

import (
	"strconv"
	"strings"

	"github.com/five82/bookfinder/internal/openlibrary"
)

// Placeholders for absent fields.
const (
	UnknownAuthor       = "Unknown Author" // list cards
	UnknownAuthorDetail = "Unknown"        // detail overlay
	NotAvailable        = "N/A"
	Untitled            = "Untitled"
)

const (
	maxPublishers = 2
	maxSubjects   = 5
)

// Card is the list rendering of a doc.
type Card struct {
	Title    string
	Authors  string
	CoverURL string
}

// Detail is the overlay rendering of a doc.
type Detail struct {
	Title      string
	Authors    string
	Year       string
	Publishers string
	Subjects   string
	CoverURL   string
}

// CardFor shapes doc for the results list.
func CardFor(doc openlibrary.Doc, covers openlibrary.Covers) Card {
	return Card{
		Title:    titleOf(doc),
		Authors:  joinOr(doc.AuthorName, 0, UnknownAuthor),
		CoverURL: covers.URL(doc.CoverID, openlibrary.CoverMedium),
	}
}

// DetailFor shapes doc for the detail overlay: up to two publishers and five
// subjects, each list falling back to NotAvailable.
func DetailFor(doc openlibrary.Doc, covers openlibrary.Covers) Detail {
	year := NotAvailable
	if doc.HasYear() {
		year = strconv.Itoa(doc.FirstPublishYear)
	}
	return Detail{
		Title:      titleOf(doc),
		Authors:    joinOr(doc.AuthorName, 0, UnknownAuthorDetail),
		Year:       year,
		Publishers: joinOr(doc.Publisher, maxPublishers, NotAvailable),
		Subjects:   joinOr(doc.Subject, maxSubjects, NotAvailable),
		CoverURL:   covers.URL(doc.CoverID, openlibrary.CoverLarge),
	}
}

func titleOf(doc openlibrary.Doc) string {
	if title := strings.TrimSpace(doc.Title); title != "" {
		return title
	}
	return Untitled
}

// joinOr joins the non-blank values, keeping at most limit of them (0 = all).
func joinOr(values []string, limit int, placeholder string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		kept = append(kept, v)
		if limit > 0 && len(kept) == limit {
			break
		}
	}
	if len(kept) == 0 {
		return placeholder
	}
	return strings.Join(kept, ", ")
}
