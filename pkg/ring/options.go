package ring

import (
	"github.com/c360/ringkit/metric"
)

// Option configures ring behavior using the functional options pattern.
type Option[T any] func(*ringOptions[T])

// ringOptions holds internal configuration for ring instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type ringOptions[T any] struct {
	// metricsReg is optional - if provided, ring stats are also exposed as Prometheus metrics
	metricsReg *metric.Registry

	// metricsName is used as the ring label for Prometheus metrics
	metricsName string
}

// WithMetrics enables Prometheus metrics export for ring statistics.
// If registry is nil or name is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, name string) Option[T] {
	return func(opts *ringOptions[T]) {
		if registry != nil && name != "" {
			opts.metricsReg = registry
			opts.metricsName = name
		}
	}
}

// applyOptions applies functional options to create final ring configuration.
// This is an internal helper used by ring constructors.
func applyOptions[T any](options ...Option[T]) *ringOptions[T] {
	opts := &ringOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
