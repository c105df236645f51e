// Package metrics exposes Prometheus counters for store mutations and aggregate reads.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finca"

// Metrics groups the collectors the data layer reports to. A nil *Metrics is a no-op.
type Metrics struct {
	mutations     *prometheus.CounterVec
	recomputes    *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// New registers the collectors on reg. Passing a dedicated registry keeps tests isolated.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Store mutations by store, operation and outcome.",
		}, []string{"store", "op", "outcome"}),
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_recomputes_total",
			Help:      "Aggregate views recomputed from store snapshots.",
		}, []string{"view"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_cache_hits_total",
			Help:      "Aggregate reads served from the cache.",
		}, []string{"view"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_invalidations_total",
			Help:      "Aggregate views marked stale by a mutation.",
		}, []string{"view"}),
	}
	if reg != nil {
		reg.MustRegister(m.mutations, m.recomputes, m.cacheHits, m.invalidations)
	}
	return m
}

// Mutation counts one create, update or delete.
func (m *Metrics) Mutation(store, op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.mutations.WithLabelValues(store, op, outcome).Inc()
}

// Recompute counts one aggregate computed from scratch.
func (m *Metrics) Recompute(view string) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(view).Inc()
}

// CacheHit counts one aggregate served from the cache.
func (m *Metrics) CacheHit(view string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(view).Inc()
}

// Invalidated counts one view marked stale.
func (m *Metrics) Invalidated(view string) {
	if m == nil {
		return
	}
	m.invalidations.WithLabelValues(view).Inc()
}
