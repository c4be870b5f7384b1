// Package fifo provides generic fixed-capacity FIFO queues backed by
// circular buffers, with built-in statistics tracking and optional
// Prometheus metrics integration.
//
// # Overview
//
// The fifo package implements a classic ring-buffer queue for managing
// ordered handles between a producer and a consumer that share a thread.
// The queue is generic, allocation-free on its hot path, and provides
// comprehensive observability through always-on statistics and optional
// metrics.
//
// # Quick Start
//
// Basic queue creation:
//
//	q, err := fifo.NewRingBuffer[int](16)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Push handles
//	err = q.Push(42)
//
//	// Pop handles
//	value, err := q.Pop()
//
// With caller-supplied storage and metrics:
//
//	q, err := fifo.NewRingBuffer[*Frame](1024,
//		fifo.WithStorage[*Frame](arena),
//		fifo.WithMetrics[*Frame](registry, "frame_queue"),
//	)
//
// # Capacity Semantics
//
// The queue distinguishes full from empty using only its two cursors,
// which requires keeping one slot permanently free:
//
//   - empty: head == tail
//   - full: advancing head would land on tail
//   - depth: cursor distance, wraparound-safe
//
// A queue built with capacity n therefore holds at most n-1 handles, and
// MinCapacity is 2. The alternative, a separate count field, was
// rejected: the cursor encoding keeps every state question answerable
// from two integers, and the sacrificed slot costs one element of
// storage.
//
// # Failure Semantics
//
// Push on a full queue fails with errors.ErrFull; Pop and Peek on an
// empty queue fail with errors.ErrEmpty. Failed operations never modify
// state, never log, never panic, and never allocate: the sentinels are
// returned bare. Full and empty are ordinary flow conditions for a
// bounded queue, so they are reported as values, not events.
//
// # Handle Ownership
//
// Handles move by Go assignment only; the queue never copies what a
// handle points at. Pop clears the vacated slot to the zero value so
// the queue does not keep popped handles reachable. Zero values are
// legal payloads: depth, not slot content, is the source of truth for
// what is queued.
//
// # Traversal
//
// ForEach visits every queued handle in place, oldest first or newest
// first, without consuming anything:
//
//	sum := 0
//	err := q.ForEach(func(v int) error {
//		sum += v
//		return nil
//	}, false)
//
// A non-nil visitor error stops the walk immediately and is returned to
// the caller verbatim, which makes it a search primitive:
//
//	errFound := errors.New("found")
//	err := q.ForEach(func(f *Frame) error {
//		if f.ID == wanted {
//			return errFound
//		}
//		return nil
//	}, false)
//	if err == errFound {
//		// hit
//	}
//
// Visitors must not push to or pop from the queue they are traversing.
//
// # Observability Architecture
//
// The fifo package implements a dual-tracking pattern for comprehensive
// observability:
//
// Statistics (Always On):
//   - Tracks all operations using atomic counters
//   - Zero configuration required
//   - Available via q.Stats()
//   - Provides computed metrics (throughput, rejection rate, utilization)
//   - Snapshot via Stats().Summary(), which also implements slog.LogValuer
//     for structured logging by the host
//   - No external dependencies
//
// Prometheus Metrics (Optional):
//   - Enabled via WithMetrics() option
//   - Exports to Prometheus for time-series monitoring
//   - Includes component labels for instance identification
//   - Standard metric types (Counter, Gauge, Histogram)
//
// # Design Decision: Dual Tracking Pattern
//
// Both Statistics and Metrics track operations independently, which
// appears redundant but serves distinct operational purposes:
//
// 1. Independence: Statistics work without Prometheus dependency
//   - Always available for debugging, even in minimal deployments
//   - No external infrastructure required for basic observability
//
// 2. Computed Metrics: Statistics provide derived values not available
// in raw Prometheus
//   - Throughput (ops/sec) with built-in timing
//   - Rejection rate as a fraction of push attempts
//   - Miss rate as a fraction of read attempts
//   - Utilization relative to usable capacity
//
// 3. Different Use Cases:
//   - Statistics: programmatic access, debugging, tests, local monitoring
//   - Metrics: time-series analysis, dashboards, alerting, production
//     monitoring
//
// Reading Statistics back out of Prometheus counters was considered and
// rejected: it would create a Prometheus dependency for basic stats,
// reads through the client are an order of magnitude slower than atomic
// loads, and Statistics would break whenever metrics are disabled.
//
// # Concurrency Contract
//
// Queue operations are single-threaded by contract. The queue itself
// takes no locks and uses no atomics on its cursor state; a producer
// and consumer on different goroutines must bring their own exclusion.
// This is deliberate: the queue targets embedding inside components
// that already own a serialization point (an event loop, an actor, a
// worker), where internal locking would be pure overhead.
//
// Statistics are the one exception: counters use atomics so a
// monitoring goroutine can read Stats() while the owner thread operates
// the queue.
//
// # API Design Patterns
//
// Functional Options:
//
// The package uses functional options for clean, composable configuration:
//
//	q, _ := fifo.NewRingBuffer[T](capacity,
//		fifo.WithStorage[T](storage),
//		fifo.WithMetrics[T](registry, prefix),
//	)
//
// Generic Types:
//
// Queues are fully generic and work with any Go type:
//
//	intQueue, _ := fifo.NewRingBuffer[int](100)
//	byteQueue, _ := fifo.NewRingBuffer[[]byte](1000)
//	structQueue, _ := fifo.NewRingBuffer[*MyStruct](500)
//
// # Performance Characteristics
//
// Operations:
//   - Push: O(1) constant time
//   - Pop: O(1) constant time
//   - Peek: O(1) constant time
//   - Depth/IsFull/IsEmpty: O(1) constant time
//   - ForEach: O(n) where n is current depth
//
// Memory:
//   - Pre-allocated slot array (or caller-supplied via WithStorage)
//   - No dynamic allocations during operation
//   - Memory usage: capacity * sizeof(T)
//   - Statistics overhead: ~200 bytes
//   - Metrics overhead: ~1KB when enabled
//
// # Common Use Cases
//
// Frame scheduling inside a render or network loop:
//
//	frameQueue, _ := fifo.NewRingBuffer[*Frame](256,
//		fifo.WithMetrics[*Frame](registry, "frame_queue"),
//	)
//
// Bounded work staging where overload must surface to the producer:
//
//	taskQueue, _ := fifo.NewRingBuffer[*Task](64)
//	if err := taskQueue.Push(task); errors.Is(err, fifoerrors.ErrFull) {
//		// apply backpressure upstream
//	}
//
// Arena-backed queues in pooled allocators:
//
//	slots := pool.Get(1024)
//	q, _ := fifo.NewRingBuffer[Event](1024, fifo.WithStorage[Event](slots))
//
// # Testing
//
// The package includes comprehensive tests:
//
//	go test ./...
//
// Benchmarks are available to validate performance:
//
//	go test -bench=. .
//
// # Examples
//
// See example_test.go for runnable examples that appear in godoc.
package fifo
