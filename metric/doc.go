// Package metric provides a Prometheus registry for RingKit instrumentation.
//
// # Overview
//
// The metric package wraps a private prometheus.Registry with name-collision
// tracking so that many ring instances can register their own metric sets
// without stepping on each other. Go runtime and process collectors are
// registered automatically at construction.
//
// # Quick Start
//
//	registry := metric.NewRegistry()
//
//	r, err := ring.New[int](1024, ring.WithMetrics[int](registry, "packet_window"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.Handle("/metrics", registry.Handler())
//
// # Registration Semantics
//
// Metrics are keyed by (owner, name). Registering the same key twice returns
// an Invalid classified error wrapping errors.ErrDuplicateMetric; conflicts
// detected by Prometheus itself are also surfaced as Invalid, while any other
// registration failure is Fatal. Unregister removes a metric and frees its
// key for reuse.
//
// The Registrar interface covers the subset needed by ring instrumentation
// (counters and gauges) so tests and embedders can substitute their own
// implementation.
package metric
