package state

import (
	"errors"
	"sync"
	"time"

	"github.com/five82/bookfinder/internal/openlibrary"
)

// MaxResults caps the result set regardless of how many docs the source reports.
const MaxResults = 20

// ErrNotInResults is returned when selecting an index outside the current results.
var ErrNotInResults = errors.New("item is not in the current results")

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	Query     string
	LastQuery string // last query whose search succeeded
	Results   []openlibrary.Doc
	Status    Status
	Selected  *openlibrary.Doc
	UpdatedAt time.Time
}

// HasSelection reports whether a result is being inspected.
func (s Snapshot) HasSelection() bool {
	return s.Selected != nil
}

// Session is the application state: query text, result set, status, and
// selection. The zero value is an idle session ready for use.
type Session struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetQuery replaces the current query text without validating it.
func (s *Session) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query = text
}

// Query returns the current query text.
func (s *Session) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Query
}

// Status returns the current status.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Status
}

// Begin marks a submission as in flight. Previous results stay visible; any
// previous error message is dropped because Loading carries none.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Status = Loading()
	s.snapshot.UpdatedAt = time.Now()
}

// Succeed stores up to MaxResults docs in source order.
func (s *Session) Succeed(query string, docs []openlibrary.Doc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(docs) > MaxResults {
		docs = docs[:MaxResults]
	}
	s.snapshot.Results = cloneDocs(docs)
	s.snapshot.LastQuery = query
	s.snapshot.Status = Succeeded()
	s.snapshot.UpdatedAt = time.Now()
}

// Fail clears the results and records a failed status with message.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Results = nil
	s.snapshot.Status = Failed(message)
	s.snapshot.UpdatedAt = time.Now()
}

// Select marks the result at index as the inspected item and returns it.
// The selection is not cleared by later searches, only by Dismiss.
func (s *Session) Select(index int) (openlibrary.Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.snapshot.Results) {
		return openlibrary.Doc{}, ErrNotInResults
	}
	doc := s.snapshot.Results[index]
	s.snapshot.Selected = &doc
	return doc, nil
}

// Selected returns the inspected item, if any.
func (s *Session) Selected() (openlibrary.Doc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot.Selected == nil {
		return openlibrary.Doc{}, false
	}
	return *s.snapshot.Selected, true
}

// Dismiss clears the selection. Calling it with nothing selected is a no-op.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Selected = nil
}

// Snapshot returns a copy of the session that is safe to read without locking.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = cloneDocs(s.snapshot.Results)
	if s.snapshot.Selected != nil {
		selected := *s.snapshot.Selected
		snap.Selected = &selected
	}
	return snap
}

func cloneDocs(docs []openlibrary.Doc) []openlibrary.Doc {
	if len(docs) == 0 {
		return nil
	}
	dup := make([]openlibrary.Doc, len(docs))
	copy(dup, docs)
	return dup
}
