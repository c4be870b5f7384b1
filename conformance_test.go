package fifo

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// QueueConformanceSuite runs the same contract checks against every
// construction mode. The factory decides where the slot array lives.
type QueueConformanceSuite struct {
	suite.Suite
	makeQueue func(capacity int) (Queue[int], error)
}

// TestQueueConformanceAllocated runs the suite over self-allocated storage.
func TestQueueConformanceAllocated(t *testing.T) {
	suite.Run(t, &QueueConformanceSuite{
		makeQueue: func(capacity int) (Queue[int], error) {
			return NewRingBuffer[int](capacity)
		},
	})
}

// TestQueueConformanceCallerStorage runs the suite over caller-supplied storage.
func TestQueueConformanceCallerStorage(t *testing.T) {
	suite.Run(t, &QueueConformanceSuite{
		makeQueue: func(capacity int) (Queue[int], error) {
			return NewRingBuffer[int](capacity, WithStorage(make([]int, capacity)))
		},
	})
}

// newQueue constructs a queue through the suite's factory.
func (s *QueueConformanceSuite) newQueue(capacity int) Queue[int] {
	queue, err := s.makeQueue(capacity)
	s.Require().NoError(err, "queue construction should not fail")
	return queue
}

// TestFillToUsableDepth fills capacity 16 to its usable depth of 15,
// checking the depth after every push, then verifies the overflow push
// is rejected and the drain returns everything in arrival order.
func (s *QueueConformanceSuite) TestFillToUsableDepth() {
	queue := s.newQueue(16)

	for i := 1; i <= 15; i++ {
		s.Require().NoError(queue.Push(i), "push %d should succeed", i)
		s.Equal(i, queue.Depth(), "depth should track pushes")
	}

	s.True(queue.IsFull(), "queue should be full at usable depth")
	s.Error(queue.Push(16), "push past usable depth should fail")
	s.Equal(15, queue.Depth(), "rejected push should not change depth")

	for i := 1; i <= 15; i++ {
		handle, err := queue.Pop()
		s.Require().NoError(err, "pop %d should succeed", i)
		s.Equal(i, handle, "handles should drain in arrival order")
	}

	s.True(queue.IsEmpty(), "queue should be empty after drain")
}

// TestPeekAlwaysAgreesWithPop interleaves peeks with pops and requires
// every peek to predict the next pop exactly.
func (s *QueueConformanceSuite) TestPeekAlwaysAgreesWithPop() {
	queue := s.newQueue(8)

	for i := 10; i < 17; i++ {
		s.Require().NoError(queue.Push(i), "push should succeed")
	}

	for !queue.IsEmpty() {
		peeked, err := queue.Peek()
		s.Require().NoError(err, "peek should succeed on non-empty queue")

		popped, err := queue.Pop()
		s.Require().NoError(err, "pop should succeed on non-empty queue")

		s.Equal(peeked, popped, "peek must agree with the following pop")
	}
}

// TestPipeThrough streams 64 handles through a queue with a standing
// depth of 5, so the cursors lap the slot array many times.
func (s *QueueConformanceSuite) TestPipeThrough() {
	queue := s.newQueue(16)

	next := 0
	for ; next < 5; next++ {
		s.Require().NoError(queue.Push(next), "priming push should succeed")
	}

	expected := 0
	for cycle := 0; cycle < 64; cycle++ {
		s.Require().NoError(queue.Push(next), "push in cycle %d should succeed", cycle)
		next++

		handle, err := queue.Pop()
		s.Require().NoError(err, "pop in cycle %d should succeed", cycle)
		s.Equal(expected, handle, "pipe-through must preserve order")
		expected++

		s.Equal(5, queue.Depth(), "standing depth should stay constant")
	}

	for !queue.IsEmpty() {
		handle, err := queue.Pop()
		s.Require().NoError(err, "drain pop should succeed")
		s.Equal(expected, handle, "drain must continue the order")
		expected++
	}

	s.Equal(next, expected, "every pushed handle should come back exactly once")
}

// TestSingleHandlePipeThrough drains a filled queue, then cycles single
// handles through it 64 times. Every pop must return the handle pushed
// in the same cycle, with the empty state restored between cycles.
func (s *QueueConformanceSuite) TestSingleHandlePipeThrough() {
	queue := s.newQueue(16)

	for i := 0; i < 15; i++ {
		s.Require().NoError(queue.Push(i), "fill push should succeed")
	}
	for !queue.IsEmpty() {
		_, err := queue.Pop()
		s.Require().NoError(err, "drain pop should succeed")
	}

	for cycle := 0; cycle < 64; cycle++ {
		value := cycle * 7
		s.Require().NoError(queue.Push(value), "push in cycle %d should succeed", cycle)
		s.False(queue.IsFull(), "single handle should never fill the queue")

		handle, err := queue.Pop()
		s.Require().NoError(err, "pop in cycle %d should succeed", cycle)
		s.Equal(value, handle, "pop must return the handle just pushed")
		s.True(queue.IsEmpty(), "queue should be empty between cycles")
	}
}

// TestStateCoherence checks that IsEmpty, IsFull, and Depth always tell
// the same story throughout a fill and drain.
func (s *QueueConformanceSuite) TestStateCoherence() {
	queue := s.newQueue(8)
	usable := queue.Capacity() - 1

	s.checkCoherence(queue, usable)
	for i := 0; i < usable; i++ {
		s.Require().NoError(queue.Push(i), "fill push should succeed")
		s.checkCoherence(queue, usable)
	}
	for !queue.IsEmpty() {
		_, err := queue.Pop()
		s.Require().NoError(err, "drain pop should succeed")
		s.checkCoherence(queue, usable)
	}
}

func (s *QueueConformanceSuite) checkCoherence(queue Queue[int], usable int) {
	depth := queue.Depth()

	s.GreaterOrEqual(depth, 0, "depth can never be negative")
	s.LessOrEqual(depth, usable, "depth can never exceed usable capacity")
	s.Equal(depth == 0, queue.IsEmpty(), "IsEmpty must match depth")
	s.Equal(depth == usable, queue.IsFull(), "IsFull must match depth")
}

// TestTraversalMatchesPopOrder verifies a forward traversal predicts the
// exact drain order without consuming anything.
func (s *QueueConformanceSuite) TestTraversalMatchesPopOrder() {
	queue := s.newQueue(16)

	for i := 1; i <= 12; i++ {
		s.Require().NoError(queue.Push(i*i), "push should succeed")
	}

	var traversed []int
	err := queue.ForEach(func(handle int) error {
		traversed = append(traversed, handle)
		return nil
	}, false)
	s.Require().NoError(err, "traversal should not fail")
	s.Equal(12, queue.Depth(), "traversal must not consume")

	var drained []int
	for !queue.IsEmpty() {
		handle, err := queue.Pop()
		s.Require().NoError(err, "pop should succeed")
		drained = append(drained, handle)
	}

	s.Equal(traversed, drained, "traversal order must match drain order")
}
