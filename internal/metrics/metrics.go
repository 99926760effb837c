// Package metrics holds the Prometheus collectors for bookfinder and an
// optional HTTP listener that exposes them.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search workflow metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookfinder",
			Name:      "searches_total",
			Help:      "Search submissions by origin and terminal outcome",
		},
		[]string{"origin", "outcome"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bookfinder",
			Name:      "search_duration_seconds",
			Help:      "Time from submission to terminal status in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	UpstreamResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookfinder",
			Name:      "upstream_responses_total",
			Help:      "Responses from the search endpoint by HTTP status code",
		},
		[]string{"code"},
	)

	UpstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookfinder",
			Name:      "upstream_errors_total",
			Help:      "Search requests that failed before a usable response",
		},
		[]string{"stage"}, // "limiter" / "request" / "status" / "decode"
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SearchesTotal)
		prometheus.MustRegister(SearchDuration)
		prometheus.MustRegister(UpstreamResponsesTotal)
		prometheus.MustRegister(UpstreamErrorsTotal)
	})
}
