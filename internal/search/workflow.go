package search

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/five82/bookfinder/internal/metrics"
	"github.com/five82/bookfinder/internal/openlibrary"
	"github.com/five82/bookfinder/internal/state"
)

// MaxResults is the result-set cap.
const MaxResults = state.MaxResults

// Origin tells whether a submission came from the user or the startup replay.
type Origin int

const (
	OriginUser Origin = iota
	OriginReplay
)

func (o Origin) String() string {
	if o == OriginReplay {
		return "replay"
	}
	return "user"
}

// Attempt is a validated submission waiting for its network call.
type Attempt struct {
	Seq     uint64
	Query   string // trimmed
	Origin  Origin
	Started time.Time
}

// Result is the outcome of one Attempt. Err is nil, ErrNoResults, or wraps ErrTransport.
type Result struct {
	Attempt Attempt
	Docs    []openlibrary.Doc
	Err     error
}

// Workflow runs submissions against the search endpoint and records the
// outcome in the Session.
//
// A submission is split in three so a UI can keep its event loop free while
// the request is outstanding: Begin (validate, remember, mark Loading), Fetch
// (the network call; safe on any goroutine), and Apply (write the outcome).
// Submissions are neither queued nor cancelled. When two overlap, whichever
// is applied last decides the visible state.
type Workflow struct {
	searcher openlibrary.Searcher
	queries  *QueryStore
	session  *state.Session
	logger   *zap.Logger
	seq      atomic.Uint64
}

// NewWorkflow wires a Workflow. queries must share session.
func NewWorkflow(searcher openlibrary.Searcher, queries *QueryStore, session *state.Session, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		searcher: searcher,
		queries:  queries,
		session:  session,
		logger:   logger.Named("search"),
	}
}

// Session returns the state the workflow writes to.
func (w *Workflow) Session() *state.Session { return w.session }

// Queries returns the query store.
func (w *Workflow) Queries() *QueryStore { return w.queries }

// Begin validates query. Empty or whitespace-only input fails synchronously:
// results are cleared, the status becomes Failed(MessageEmptyQuery), and ok
// is false. Otherwise a user submission is remembered, the status becomes
// Loading, and the Attempt to pass to Fetch is returned.
func (w *Workflow) Begin(query string, origin Origin) (Attempt, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		w.session.Fail(MessageEmptyQuery)
		metrics.SearchesTotal.WithLabelValues(origin.String(), outcomeLabel(ErrEmptyQuery)).Inc()
		w.logger.Debug("rejected empty query", zap.Stringer("origin", origin))
		return Attempt{}, false
	}

	if origin == OriginUser {
		if err := w.queries.Remember(query); err != nil {
			w.logger.Warn("remember query failed", zap.Error(err))
		}
	}

	w.session.Begin()
	attempt := Attempt{
		Seq:     w.seq.Add(1),
		Query:   trimmed,
		Origin:  origin,
		Started: time.Now(),
	}
	w.logger.Debug("search started",
		zap.Uint64("seq", attempt.Seq),
		zap.String("query", attempt.Query),
		zap.Stringer("origin", origin),
	)
	return attempt, true
}

// Fetch performs the single request for a. It does not touch the Session.
func (w *Workflow) Fetch(ctx context.Context, a Attempt) Result {
	resp, err := w.searcher.Search(ctx, a.Query)
	if err != nil {
		w.logger.Warn("search request failed",
			zap.Uint64("seq", a.Seq),
			zap.String("query", a.Query),
			zap.Error(err),
		)
		return Result{Attempt: a, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	if len(resp.Docs) == 0 {
		return Result{Attempt: a, Err: ErrNoResults}
	}

	docs := resp.Docs
	if len(docs) > MaxResults {
		docs = docs[:MaxResults]
	}
	return Result{Attempt: a, Docs: docs}
}

// Apply records r in the Session and returns the resulting terminal status.
func (w *Workflow) Apply(r Result) state.Status {
	if r.Err != nil {
		w.session.Fail(Message(r.Err))
	} else {
		w.session.Succeed(r.Attempt.Query, r.Docs)
	}

	outcome := outcomeLabel(r.Err)
	elapsed := time.Since(r.Attempt.Started)
	metrics.SearchesTotal.WithLabelValues(r.Attempt.Origin.String(), outcome).Inc()
	metrics.SearchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	w.logger.Info("search finished",
		zap.Uint64("seq", r.Attempt.Seq),
		zap.String("query", r.Attempt.Query),
		zap.String("outcome", outcome),
		zap.Int("results", len(r.Docs)),
		zap.Duration("elapsed", elapsed),
	)
	return w.session.Status()
}

// Submit runs Begin, Fetch, and Apply in sequence and returns the terminal status.
func (w *Workflow) Submit(ctx context.Context, query string, origin Origin) state.Status {
	attempt, ok := w.Begin(query, origin)
	if !ok {
		return w.session.Status()
	}
	return w.Apply(w.Fetch(ctx, attempt))
}

// Replay resubmits the remembered query, if any, without remembering it again.
// ok is false when nothing was remembered and no submission happened.
func (w *Workflow) Replay(ctx context.Context) (status state.Status, ok bool) {
	query, ok := w.queries.LoadRemembered()
	if !ok {
		return w.session.Status(), false
	}
	return w.Submit(ctx, query, OriginReplay), true
}
