package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and histograms for one generation run. All
// methods are nil-safe: a nil *Metrics silently does nothing, so callers
// that run without --metrics-addr need no guard.
type Metrics struct {
	nodesEvaluated  *prometheus.CounterVec
	pathfindQueries prometheus.Counter
	pathfindLatency prometheus.Histogram
	placeRetries    prometheus.Histogram
	placeFailures   prometheus.Counter
}

// New registers and returns a fresh metrics set under reg. Pass
// prometheus.NewRegistry() for an isolated registry, or nil to use the
// default global registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		nodesEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mapgen",
			Name:      "nodes_evaluated_total",
			Help:      "Generator nodes evaluated, by node type.",
		}, []string{"node"}),
		pathfindQueries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mapgen",
			Name:      "pathfind_queries_total",
			Help:      "A* pathfinding searches run (Dijkstra and BFS are not counted).",
		}),
		pathfindLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mapgen",
			Name:      "pathfind_query_seconds",
			Help:      "Wall-clock duration of a single pathfinding search.",
			Buckets:   prometheus.DefBuckets,
		}),
		placeRetries: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mapgen",
			Name:      "place_attempt_tries",
			Help:      "Tries spent per successful Place element placement.",
			Buckets:   prometheus.LinearBuckets(0, 100, 10),
		}),
		placeFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mapgen",
			Name:      "place_failures_total",
			Help:      "Place elements that exhausted their tries without placing.",
		}),
	}
}

// NodeEvaluated records one evaluation of a generator node of the given
// kind (e.g. "set", "place", "connect").
func (m *Metrics) NodeEvaluated(kind string) {
	if m == nil {
		return
	}
	m.nodesEvaluated.WithLabelValues(kind).Inc()
}

// PathfindQuery records one pathfinding search and its duration.
func (m *Metrics) PathfindQuery(seconds float64) {
	if m == nil {
		return
	}
	m.pathfindQueries.Inc()
	m.pathfindLatency.Observe(seconds)
}

// PlaceAttempt records the number of tries a successful placement took.
func (m *Metrics) PlaceAttempt(tries int) {
	if m == nil {
		return
	}
	m.placeRetries.Observe(float64(tries))
}

// PlaceFailure records a placement that exhausted its tries.
func (m *Metrics) PlaceFailure() {
	if m == nil {
		return
	}
	m.placeFailures.Inc()
}

// Handler returns an http.Handler exposing the registered metrics in the
// Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts an HTTP server on addr exposing /metrics, blocking until
// it fails or is shut down. Intended to run in its own goroutine.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
