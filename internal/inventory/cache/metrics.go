package cache

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts cache outcomes and dropped events. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	publishErrors prometheus.Counter
}

// NewMetrics creates the cache metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_level_cache_hits_total",
			Help: "Number of inventory level reads served from the fast store",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_level_cache_misses_total",
			Help: "Number of inventory level reads that fell through to the backing store",
		}),
		publishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inventory_event_publish_failures_total",
			Help: "Number of inventory events that could not be published",
		}),
	}
	reg.MustRegister(m.hits, m.misses, m.publishErrors)
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) publishFailed() {
	if m != nil {
		m.publishErrors.Inc()
	}
}
