package fifo

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks queue performance metrics.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes         int64
	pops           int64
	peeks          int64
	traversals     int64
	fullRejections int64
	emptyMisses    int64

	// Protected by mutex
	mu           sync.RWMutex
	startTime    time.Time
	currentDepth int64
	maxDepth     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records a successful push operation.
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Pop records a successful pop operation.
func (s *Statistics) Pop() {
	atomic.AddInt64(&s.pops, 1)
}

// Peek records a successful peek operation.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Traversal records a ForEach call.
func (s *Statistics) Traversal() {
	atomic.AddInt64(&s.traversals, 1)
}

// FullRejection records a push rejected because the queue was full.
func (s *Statistics) FullRejection() {
	atomic.AddInt64(&s.fullRejections, 1)
}

// EmptyMiss records a pop or peek attempted on an empty queue.
func (s *Statistics) EmptyMiss() {
	atomic.AddInt64(&s.emptyMisses, 1)
}

// UpdateDepth updates the current queue depth.
func (s *Statistics) UpdateDepth(depth int64) {
	s.mu.Lock()
	s.currentDepth = depth
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	s.mu.Unlock()
}

// Pushes returns the total number of successful push operations.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of successful pop operations.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Peeks returns the total number of successful peek operations.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Traversals returns the total number of ForEach calls.
func (s *Statistics) Traversals() int64 {
	return atomic.LoadInt64(&s.traversals)
}

// FullRejections returns the total number of pushes rejected on a full queue.
func (s *Statistics) FullRejections() int64 {
	return atomic.LoadInt64(&s.fullRejections)
}

// EmptyMisses returns the total number of pops and peeks attempted on an
// empty queue.
func (s *Statistics) EmptyMisses() int64 {
	return atomic.LoadInt64(&s.emptyMisses)
}

// CurrentDepth returns the current number of handles in the queue.
func (s *Statistics) CurrentDepth() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDepth
}

// MaxDepth returns the deepest the queue has been since start or Reset.
func (s *Statistics) MaxDepth() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxDepth
}

// Throughput returns the average number of pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	totalPushes := s.Pushes()
	return float64(totalPushes) / elapsed.Seconds()
}

// PopThroughput returns the average number of pops per second.
func (s *Statistics) PopThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	totalPops := s.Pops()
	return float64(totalPops) / elapsed.Seconds()
}

// RejectionRate returns the fraction of push attempts rejected because
// the queue was full (0.0 to 1.0).
func (s *Statistics) RejectionRate() float64 {
	pushes := s.Pushes()
	rejections := s.FullRejections()
	attempts := pushes + rejections

	if attempts == 0 {
		return 0.0
	}

	return float64(rejections) / float64(attempts)
}

// MissRate returns the fraction of pop and peek attempts that found the
// queue empty (0.0 to 1.0).
func (s *Statistics) MissRate() float64 {
	reads := s.Pops() + s.Peeks()
	misses := s.EmptyMisses()
	attempts := reads + misses

	if attempts == 0 {
		return 0.0
	}

	return float64(misses) / float64(attempts)
}

// Utilization returns the current queue fill level as a fraction
// (0.0 to 1.0). Pass the number of usable slots, which for a ring
// buffer is one less than its total capacity.
func (s *Statistics) Utilization(usable int64) float64 {
	if usable == 0 {
		return 0.0
	}

	currentDepth := s.CurrentDepth()
	return float64(currentDepth) / float64(usable)
}

// Uptime returns how long the queue has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.traversals, 0)
	atomic.StoreInt64(&s.fullRejections, 0)
	atomic.StoreInt64(&s.emptyMisses, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentDepth = 0
	s.maxDepth = 0
	s.mu.Unlock()
}

// StatsSummary returns a snapshot of all statistics.
type StatsSummary struct {
	Pushes         int64         `json:"pushes"`
	Pops           int64         `json:"pops"`
	Peeks          int64         `json:"peeks"`
	Traversals     int64         `json:"traversals"`
	FullRejections int64         `json:"full_rejections"`
	EmptyMisses    int64         `json:"empty_misses"`
	CurrentDepth   int64         `json:"current_depth"`
	MaxDepth       int64         `json:"max_depth"`
	Throughput     float64       `json:"throughput"`
	PopThroughput  float64       `json:"pop_throughput"`
	RejectionRate  float64       `json:"rejection_rate"`
	MissRate       float64       `json:"miss_rate"`
	Uptime         time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:         s.Pushes(),
		Pops:           s.Pops(),
		Peeks:          s.Peeks(),
		Traversals:     s.Traversals(),
		FullRejections: s.FullRejections(),
		EmptyMisses:    s.EmptyMisses(),
		CurrentDepth:   s.CurrentDepth(),
		MaxDepth:       s.MaxDepth(),
		Throughput:     s.Throughput(),
		PopThroughput:  s.PopThroughput(),
		RejectionRate:  s.RejectionRate(),
		MissRate:       s.MissRate(),
		Uptime:         s.Uptime(),
	}
}

// LogValue implements slog.LogValuer so a summary can be attached to a
// structured log record as a single grouped attribute. The queue itself
// never logs; hosts decide when a snapshot is worth recording.
func (s StatsSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("pushes", s.Pushes),
		slog.Int64("pops", s.Pops),
		slog.Int64("peeks", s.Peeks),
		slog.Int64("traversals", s.Traversals),
		slog.Int64("full_rejections", s.FullRejections),
		slog.Int64("empty_misses", s.EmptyMisses),
		slog.Int64("current_depth", s.CurrentDepth),
		slog.Int64("max_depth", s.MaxDepth),
		slog.Float64("rejection_rate", s.RejectionRate),
		slog.Float64("miss_rate", s.MissRate),
		slog.Duration("uptime", s.Uptime),
	)
}
