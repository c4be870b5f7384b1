package fifo

import (
	"github.com/c360/fifo/metric"
)

// Option configures queue behavior using the functional options pattern.
// This provides a clean, extensible API for configuring queues.
type Option[T any] func(*queueOptions[T])

// queueOptions holds internal configuration for queue instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type queueOptions[T any] struct {
	// storage is optional caller-supplied backing for the slot array.
	// Its length must equal the queue capacity.
	storage []T

	// metricsReg is optional - if provided, queue stats are also exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithStorage supplies the backing slot array instead of letting the
// constructor allocate one. Hosts that pool or arena-allocate their
// slot arrays use this to keep the queue inside caller-owned memory.
// The slice is zeroed at construction and its length must equal the
// queue capacity.
func WithStorage[T any](storage []T) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.storage = storage
	}
}

// WithMetrics enables Prometheus metrics export for queue statistics.
// If registry is nil, this option is ignored.
// Registry should not be nil in normal usage - this handles edge cases gracefully.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *queueOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final queue configuration.
// This is an internal helper used by queue constructors.
func applyOptions[T any](options ...Option[T]) *queueOptions[T] {
	opts := &queueOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
