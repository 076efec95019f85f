package ring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/metric"
)

// ringMetrics holds Prometheus metrics for ring operations.
type ringMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes     prometheus.Counter
	pops       prometheus.Counter
	peeks      prometheus.Counter
	rejections prometheus.Counter
	misses     prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newRingMetrics creates and registers ring metrics with the provided registry.
func newRingMetrics(registry *metric.Registry, name string) (*ringMetrics, error) {
	m := &ringMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Total number of successful ring insertions",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Total number of successful ring removals",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Total number of ring element accesses",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "rejections_total",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Total number of insertions refused on a full ring",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "misses_total",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Total number of accesses refused on an empty ring",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "size",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Current number of elements in the ring",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"ring": name},
			Help:        "Ring utilization as a fraction of capacity (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "ring_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "ring_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "ring_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "ring_rejections", m.rejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "ring_misses", m.misses); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "ring_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates size/utilization.
func (m *ringMetrics) recordPush(size, capacity int) {
	m.pushes.Inc()
	m.updateSize(size, capacity)
}

// recordPop increments the pop counter and updates size/utilization.
func (m *ringMetrics) recordPop(size, capacity int) {
	m.pops.Inc()
	m.updateSize(size, capacity)
}

// recordPeek increments the peek counter.
func (m *ringMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordRejection increments the rejection counter.
func (m *ringMetrics) recordRejection() {
	m.rejections.Inc()
}

// recordMiss increments the miss counter.
func (m *ringMetrics) recordMiss() {
	m.misses.Inc()
}

// updateSize sets the current ring size and utilization.
func (m *ringMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	if capacity == 0 {
		m.utilization.Set(0)
		return
	}
	m.utilization.Set(float64(size) / float64(capacity))
}
