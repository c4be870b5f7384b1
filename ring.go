package fifo

import (
	"github.com/c360/fifo/errors"
)

// ringBuffer is a single-threaded circular queue with strict
// reject-when-full semantics.
//
// head points at the next slot to write, tail at the next slot to read.
// Depth is always derived from the two cursors, never tracked
// separately: head == tail means empty, and the slot before tail stays
// free so a full queue never collapses into the same cursor state.
type ringBuffer[T any] struct {
	slots    []T
	capacity int
	head     int // Points to the next write position
	tail     int // Points to the next read position
	stats    *Statistics  // ALWAYS initialized for observability
	metrics  *fifoMetrics // Optional Prometheus metrics
}

// newRingBuffer creates a new ring buffer instance.
// Returns an error if the configuration is invalid or if metrics
// registration fails when requested.
func newRingBuffer[T any](capacity int, opts *queueOptions[T]) (*ringBuffer[T], error) {
	if capacity < MinCapacity {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Queue", "NewRingBuffer", "validate capacity")
	}

	slots := opts.storage
	if slots == nil {
		slots = make([]T, capacity)
	} else {
		if len(slots) != capacity {
			return nil, errors.WrapInvalid(errors.ErrStorageMismatch,
				"Queue", "NewRingBuffer", "validate storage")
		}
		// Stale handles in caller storage must not survive into
		// traversals or hold references alive
		var zero T
		for i := range slots {
			slots[i] = zero
		}
	}

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *fifoMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newFifoMetrics(opts.metricsReg, opts.metricsPrefix, capacity)
		if err != nil {
			// Return classified error instead of silently ignoring
			return nil, errors.WrapInvalid(err, "Queue", "NewRingBuffer", "metrics registration")
		}
	}

	return &ringBuffer[T]{
		slots:    slots,
		capacity: capacity,
		stats:    stats,   // ALWAYS present
		metrics:  metrics, // Optional
	}, nil
}

// Push appends a handle at the head cursor.
func (r *ringBuffer[T]) Push(handle T) error {
	if r.IsFull() {
		// ALWAYS track in stats
		r.stats.FullRejection()

		// ALSO track in metrics if enabled
		if r.metrics != nil {
			r.metrics.recordFullRejection()
		}

		return errors.ErrFull
	}

	r.slots[r.head] = handle
	r.head = (r.head + 1) % r.capacity

	depth := r.Depth()

	// ALWAYS track in stats
	r.stats.Push()
	r.stats.UpdateDepth(int64(depth))

	// ALSO track in metrics if enabled
	if r.metrics != nil {
		r.metrics.recordPush(depth, r.capacity-1)
	}

	return nil
}

// Pop removes and returns the handle at the tail cursor.
func (r *ringBuffer[T]) Pop() (T, error) {
	var zero T

	if r.IsEmpty() {
		// ALWAYS track in stats
		r.stats.EmptyMiss()

		// ALSO track in metrics if enabled
		if r.metrics != nil {
			r.metrics.recordEmptyMiss()
		}

		return zero, errors.ErrEmpty
	}

	handle := r.slots[r.tail]
	r.slots[r.tail] = zero // Clear for GC
	r.tail = (r.tail + 1) % r.capacity

	depth := r.Depth()

	// ALWAYS track in stats
	r.stats.Pop()
	r.stats.UpdateDepth(int64(depth))

	// ALSO track in metrics if enabled
	if r.metrics != nil {
		r.metrics.recordPop(depth, r.capacity-1)
	}

	return handle, nil
}

// Peek returns the handle at the tail cursor without removing it.
func (r *ringBuffer[T]) Peek() (T, error) {
	var zero T

	if r.IsEmpty() {
		// ALWAYS track in stats
		r.stats.EmptyMiss()

		// ALSO track in metrics if enabled
		if r.metrics != nil {
			r.metrics.recordEmptyMiss()
		}

		return zero, errors.ErrEmpty
	}

	handle := r.slots[r.tail]

	// ALWAYS track in stats
	r.stats.Peek()

	// ALSO track in metrics if enabled
	if r.metrics != nil {
		r.metrics.recordPeek()
	}

	return handle, nil
}

// Depth returns the number of queued handles. The subtraction is lifted
// by one capacity so a wrapped head stays non-negative before the
// modulo.
func (r *ringBuffer[T]) Depth() int {
	return (r.head - r.tail + r.capacity) % r.capacity
}

// Capacity returns the total slot count. Usable depth is one less.
func (r *ringBuffer[T]) Capacity() int {
	return r.capacity // This is immutable
}

// IsFull returns true if advancing head would collide with tail.
func (r *ringBuffer[T]) IsFull() bool {
	return (r.head+1)%r.capacity == r.tail
}

// IsEmpty returns true if the queue contains no handles.
func (r *ringBuffer[T]) IsEmpty() bool {
	return r.head == r.tail
}

// ForEach visits every queued handle in place. The visitor sees handles
// oldest first, or newest first when reverse is true. A non-nil visitor
// error aborts the walk and is returned verbatim.
func (r *ringBuffer[T]) ForEach(visit VisitFunc[T], reverse bool) error {
	if visit == nil {
		return errors.WrapInvalid(errors.ErrNilVisitor, "Queue", "ForEach", "validate visitor")
	}

	// ALWAYS track in stats
	r.stats.Traversal()

	// ALSO track in metrics if enabled
	if r.metrics != nil {
		r.metrics.recordTraversal()
	}

	depth := r.Depth()
	for i := 0; i < depth; i++ {
		var idx int
		if reverse {
			idx = (r.head + r.capacity - i - 1) % r.capacity
		} else {
			idx = (r.tail + i) % r.capacity
		}
		if err := visit(r.slots[idx]); err != nil {
			return err
		}
	}

	return nil
}

// Stats returns queue statistics (always available for observability).
func (r *ringBuffer[T]) Stats() *Statistics {
	return r.stats
}
