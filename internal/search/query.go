package search

import (
	"go.uber.org/zap"

	"github.com/five82/bookfinder/internal/state"
)

// Memory is single-slot durable storage for the last submitted query.
// prefs.QueryMemory is the production implementation.
type Memory interface {
	Remember(query string) error
	Recall() (string, error)
}

// QueryStore holds the live query text (in the Session) and remembers the
// last user-submitted query across restarts.
type QueryStore struct {
	session *state.Session
	memory  Memory
	logger  *zap.Logger
}

// NewQueryStore builds a QueryStore. A nil memory disables persistence.
func NewQueryStore(session *state.Session, memory Memory, logger *zap.Logger) *QueryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryStore{session: session, memory: memory, logger: logger}
}

// SetQuery replaces the current query text. No validation happens here.
func (q *QueryStore) SetQuery(text string) {
	q.session.SetQuery(text)
}

// Query returns the current query text.
func (q *QueryStore) Query() string {
	return q.session.Query()
}

// Remember persists text as the last submitted query, overwriting any prior value.
func (q *QueryStore) Remember(text string) error {
	if q.memory == nil {
		return nil
	}
	return q.memory.Remember(text)
}

// LoadRemembered reads the persisted query. When one exists it becomes the
// current query and is returned with ok=true; the caller then submits it.
// Read failures are logged and reported as nothing remembered.
func (q *QueryStore) LoadRemembered() (string, bool) {
	if q.memory == nil {
		return "", false
	}
	text, err := q.memory.Recall()
	if err != nil {
		q.logger.Warn("recall last query failed", zap.Error(err))
		return "", false
	}
	if text == "" {
		return "", false
	}
	q.session.SetQuery(text)
	return text, true
}
