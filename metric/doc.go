// Package metric provides a Prometheus-based metrics registry for queue
// observability.
//
// The package offers a centralized registry managing component-specific
// metrics with duplicate detection. It deliberately ships no HTTP server:
// embedding hosts own the scrape endpoint and mount their own promhttp
// handler on the underlying Prometheus registry.
//
// # Basic Usage
//
// Setting up a registry and handing it to a queue:
//
//	registry := metric.NewMetricsRegistry()
//	q, err := fifo.NewRingBuffer[*Frame](1024,
//	    fifo.WithMetrics[*Frame](registry, "frame-queue"))
//
// Exposing the metrics from the host:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//	    registry.PrometheusRegistry(), promhttp.HandlerOpts{}))
//
// # Component Metrics
//
// Components register metrics under a "component.metric" key:
//
//	counter := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "pushes_total",
//	    Help: "Total number of push operations",
//	})
//	err := registry.RegisterCounter("frame-queue", "pushes_total", counter)
//
// Gauges and histograms register the same way through RegisterGauge and
// RegisterHistogram. Registering the same key twice returns an invalid
// classified error; conflicts inside Prometheus itself surface as invalid
// when the collector was already registered and fatal otherwise.
//
// # MetricsRegistrar Interface
//
// Consumers depend on the MetricsRegistrar interface rather than the
// concrete registry, which enables testing with mock registrars:
//
//	type Pipeline struct {
//	    metrics metric.MetricsRegistrar
//	}
//
// # Thread Safety
//
// All registry operations are thread-safe:
//   - Registration methods use mutex protection
//   - Metric recording is lock-free (Prometheus guarantee)
//   - PrometheusRegistry() is safe for concurrent access
//
// # Design Decisions
//
// Registry Without Server: the queue is a library with no network
// surface; binding a port from inside a container type would fight the
// host's lifecycle. The registry exposes PrometheusRegistry() instead.
//
// Prometheus Direct Integration: the official client is used without an
// abstraction layer to keep native histogram/gauge semantics and full
// ecosystem compatibility.
//
// Go runtime and process collectors are pre-registered so a host that
// scrapes a queue-only registry still sees baseline process health.
package metric
