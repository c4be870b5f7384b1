package fifo

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/fifo/metric"
)

// fifoMetrics holds Prometheus metrics for queue operations.
type fifoMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes         prometheus.Counter
	pops           prometheus.Counter
	peeks          prometheus.Counter
	traversals     prometheus.Counter
	fullRejections prometheus.Counter
	emptyMisses    prometheus.Counter

	// Gauge metrics - updated on operations
	depth       prometheus.Gauge
	utilization prometheus.Gauge

	// depthOnPush observes queue depth after each successful push,
	// showing how close to full the queue runs in steady state
	depthOnPush prometheus.Histogram
}

// newFifoMetrics creates and registers queue metrics with the provided registry.
func newFifoMetrics(registry *metric.MetricsRegistry, prefix string, capacity int) (*fifoMetrics, error) {
	// Bucket width spans the usable depth in ten steps, with a floor of
	// one so tiny queues still get distinct buckets
	width := float64(capacity-1) / 10
	if width < 1 {
		width = 1
	}

	m := &fifoMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful push operations",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful pop operations",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful peek operations",
		}),
		traversals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "traversals_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of ForEach traversals",
		}),
		fullRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "full_rejections_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of pushes rejected because the queue was full",
		}),
		emptyMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "empty_misses_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of pops and peeks attempted on an empty queue",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "depth",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of handles in the queue",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Queue fill level over usable slots (0.0 to 1.0)",
		}),
		depthOnPush: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "fifo",
			Subsystem:   "ring",
			Name:        "depth_on_push",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Queue depth observed after each successful push",
			Buckets:     prometheus.LinearBuckets(0, width, 11),
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "ring_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_traversals", m.traversals); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_full_rejections", m.fullRejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "ring_empty_misses", m.emptyMisses); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_depth", m.depth); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogram(prefix, "ring_depth_on_push", m.depthOnPush); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates depth/utilization.
func (m *fifoMetrics) recordPush(depth, usable int) {
	m.pushes.Inc()
	m.depth.Set(float64(depth))
	m.utilization.Set(float64(depth) / float64(usable))
	m.depthOnPush.Observe(float64(depth))
}

// recordPop increments the pop counter and updates depth/utilization.
func (m *fifoMetrics) recordPop(depth, usable int) {
	m.pops.Inc()
	m.depth.Set(float64(depth))
	m.utilization.Set(float64(depth) / float64(usable))
}

// recordPeek increments the peek counter.
func (m *fifoMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordTraversal increments the traversal counter.
func (m *fifoMetrics) recordTraversal() {
	m.traversals.Inc()
}

// recordFullRejection increments the rejected-push counter.
func (m *fifoMetrics) recordFullRejection() {
	m.fullRejections.Inc()
}

// recordEmptyMiss increments the empty-read counter.
func (m *fifoMetrics) recordEmptyMiss() {
	m.emptyMisses.Inc()
}
