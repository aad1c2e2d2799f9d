package searchers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

var (
	// searchesTotal counts searches by searcher.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shibumi_searches_total",
		Help: "Total searches by searcher",
	}, []string{"searcher"})

	// nodesTotal counts boards generated during search.
	nodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shibumi_search_nodes_total",
		Help: "Total boards generated during search, by searcher",
	}, []string{"searcher"})

	// evalsTotal counts boards passed to the scorer.
	evalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shibumi_search_evals_total",
		Help: "Total boards scored during search, by searcher",
	}, []string{"searcher"})

	// searchDuration tracks the time taken by each search.
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shibumi_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~30s
	}, []string{"searcher"})
)

// RecordSearch updates the search metrics of the searcher with the given name.
func RecordSearch(name string, elapsed time.Duration, nodes, evals int) {
	searchesTotal.WithLabelValues(name).Inc()
	nodesTotal.WithLabelValues(name).Add(float64(nodes))
	evalsTotal.WithLabelValues(name).Add(float64(evals))
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
