// Package fifo provides a generic fixed-capacity FIFO queue backed by a
// circular buffer.
//
// This package offers a single queue type:
//   - RingBuffer: fixed-capacity circular queue with strict reject-when-full
//     semantics
//   - Statistics always enabled for observability
//   - Optional Prometheus metrics integration via functional options
//
// The queue is single-threaded by contract. It never locks, never blocks,
// and never allocates on the push/pop path. Callers that share a queue
// across goroutines own the exclusion.
package fifo

import (
	"context"
)

// Queue represents a fixed-capacity FIFO contract that all queue
// implementations must satisfy. The queue is parameterized by handle
// type T for type safety.
type Queue[T any] interface {
	// Push appends a handle to the queue. Returns errors.ErrFull when no
	// slot is free; the queue state is untouched in that case.
	Push(handle T) error

	// Pop removes and returns the oldest handle.
	// Returns errors.ErrEmpty when the queue holds nothing.
	Pop() (T, error)

	// Peek returns the oldest handle without removing it.
	// Returns errors.ErrEmpty when the queue holds nothing.
	Peek() (T, error)

	// Depth returns the number of handles currently queued.
	Depth() int

	// Capacity returns the total slot count fixed at construction.
	// One slot is always kept free, so at most Capacity()-1 handles
	// can be queued at once.
	Capacity() int

	// IsFull returns true if no slot is free.
	IsFull() bool

	// IsEmpty returns true if the queue contains no handles.
	IsEmpty() bool

	// ForEach visits every queued handle without removing any, oldest
	// first, or newest first when reverse is true. A non-nil error from
	// the visitor stops the traversal and is returned verbatim.
	ForEach(visit VisitFunc[T], reverse bool) error

	// Stats returns queue statistics (always available for observability).
	Stats() *Statistics
}

// VisitFunc is called by ForEach for each queued handle. Returning a
// non-nil error stops the traversal; the error reaches the ForEach
// caller unchanged, so it can carry any early-stop signal the visitor
// chooses. Visitors must not push to or pop from the queue they are
// traversing.
type VisitFunc[T any] func(handle T) error

// MinCapacity is the smallest legal queue capacity. One slot is
// sacrificed to tell a full queue from an empty one, so a capacity
// below two could never hold a handle.
const MinCapacity = 2

// contextKey is used for context values in this package.
type contextKey string

const (
	// ContextKeyStats can be used to pass statistics through context.
	ContextKeyStats contextKey = "fifo-stats"
)

// WithStats adds statistics to the context.
func WithStats(ctx context.Context, stats *Statistics) context.Context {
	return context.WithValue(ctx, ContextKeyStats, stats)
}

// StatsFromContext retrieves statistics from the context.
func StatsFromContext(ctx context.Context) (*Statistics, bool) {
	stats, ok := ctx.Value(ContextKeyStats).(*Statistics)
	return stats, ok
}

// NewRingBuffer creates a new circular queue with the specified capacity
// and options. Stats are ALWAYS collected for observability. Metrics are
// optional via WithMetrics(). Returns an error if capacity is below
// MinCapacity, if supplied storage does not match the capacity, or if
// metrics registration fails when metrics are requested.
// Capacity is required - all other configuration is via functional options.
func NewRingBuffer[T any](capacity int, options ...Option[T]) (Queue[T], error) {
	opts := applyOptions(options...)
	return newRingBuffer(capacity, opts)
}
