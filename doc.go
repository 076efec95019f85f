// Package ringkit provides fixed-capacity ring buffer containers with
// built-in observability.
//
// # Philosophy
//
// RingKit is a leaf library: it owns no goroutines, opens no sockets and
// reads no files. Its single job is a correct, predictable circular
// buffer that applications can embed wherever a bounded, double-ended
// sequence is needed - sliding windows, bounded histories, scratch deques,
// fixed-size reorder buffers.
//
// RingKit MUST NOT contain:
//   - Transport or persistence (no network, file or process boundary)
//   - Overflow policies that silently drop data (a full ring is an error,
//     not a shedding decision; shedding belongs to the caller)
//   - Internal locking (the container is single-goroutine by contract;
//     cross-goroutine hand-off belongs to channels or caller-owned locks)
//
// # Packages
//
//	pkg/ring    Ring[T]: the fixed-capacity double-ended circular buffer
//	errors      classified errors shared by all RingKit components
//	metric      Prometheus registry and HTTP handler for instrumentation
//
// # Quick Start
//
//	r, err := ring.New[float64](256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, sample := range samples {
//	    if err := r.PushBack(sample); err != nil {
//	        // ring full: make room explicitly
//	        _, _ = r.PopFront()
//	        _ = r.PushBack(sample)
//	    }
//	}
//
// # Observability
//
// Every ring tracks statistics with atomic counters at no configuration
// cost, and can additionally export Prometheus metrics through a shared
// registry:
//
//	registry := metric.NewRegistry()
//	r, err := ring.New[Event](4096, ring.WithMetrics[Event](registry, "event_window"))
//	http.Handle("/metrics", registry.Handler())
//
// # Error Handling
//
// All failures are synchronous, classified and sentinel-tagged; see the
// errors package. Operations never leave a ring in a partially mutated
// state: they fully succeed or have no observable effect.
package ringkit
