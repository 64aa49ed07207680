// Package metrics exposes Prometheus counters about routed events, keyword
// lookups and store mutations.
package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
)

// Store mutations.
const (
	OpPut    = "put"
	OpDelete = "delete"
)

var (
	events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autoresponder_events_total",
		Help: "Total events routed by kind",
	}, []string{"kind"})

	lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autoresponder_keyword_lookups_total",
		Help: "Total keyword lookups by outcome",
	}, []string{"outcome"})

	mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autoresponder_store_mutations_total",
		Help: "Total response store mutations by operation",
	}, []string{"op"})

	entries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "autoresponder_responses",
		Help: "Number of configured keyword responses",
	})
)

// Register adds the collectors to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{events, lookups, mutations, entries} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordEvent counts a routed event.
func RecordEvent(kind string) {
	events.WithLabelValues(kind).Inc()
}

// RecordLookup counts a keyword lookup outcome.
func RecordLookup(outcome string) {
	lookups.WithLabelValues(outcome).Inc()
}

// RecordMutation counts a store mutation and updates the entry gauge to size.
func RecordMutation(op string, size int) {
	mutations.WithLabelValues(op).Inc()
	entries.Set(float64(size))
}

// SetEntries sets the entry gauge.
func SetEntries(size int) {
	entries.Set(float64(size))
}

// NewRouter serves g on /metrics and a liveness probe on /healthz.
func NewRouter(g prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}
