package fifo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/c360/fifo/errors"
	"github.com/c360/fifo/metric"
)

// gatherValue reads a single-series metric family from the registry.
// Counters and gauges return their value, histograms their sample count.
func gatherValue(t *testing.T, registry *metric.MetricsRegistry, name string) float64 {
	t.Helper()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err, "Gather should not fail")

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1, "expected a single series for %s", name)

		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			return m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			return m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			return float64(m.GetHistogram().GetSampleCount())
		}
	}

	t.Fatalf("metric family %s not found", name)
	return 0
}

func TestQueueWithMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	queue, err := NewRingBuffer[int](16, WithMetrics[int](registry, "ingest"))
	require.NoError(t, err, "NewRingBuffer with metrics should not fail")

	for i := 0; i < 3; i++ {
		require.NoError(t, queue.Push(i), "Push should succeed")
	}
	_, err = queue.Pop()
	require.NoError(t, err, "Pop should succeed")
	_, err = queue.Peek()
	require.NoError(t, err, "Peek should succeed")
	err = queue.ForEach(func(handle int) error { return nil }, false)
	require.NoError(t, err, "ForEach should not fail")

	assert.Equal(t, 3.0, gatherValue(t, registry, "fifo_ring_pushes_total"))
	assert.Equal(t, 1.0, gatherValue(t, registry, "fifo_ring_pops_total"))
	assert.Equal(t, 1.0, gatherValue(t, registry, "fifo_ring_peeks_total"))
	assert.Equal(t, 1.0, gatherValue(t, registry, "fifo_ring_traversals_total"))

	// Two handles remain after the single pop
	assert.Equal(t, 2.0, gatherValue(t, registry, "fifo_ring_depth"))
	assert.InDelta(t, 2.0/15.0, gatherValue(t, registry, "fifo_ring_utilization"), 0.0001)

	// Depth histogram saw one observation per successful push
	assert.Equal(t, 3.0, gatherValue(t, registry, "fifo_ring_depth_on_push"))
}

func TestQueueMetricsFullEmptySignals(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	queue, err := NewRingBuffer[int](4, WithMetrics[int](registry, "pressure"))
	require.NoError(t, err, "NewRingBuffer with metrics should not fail")

	// Fill to usable depth, then overflow twice
	for i := 0; i < 3; i++ {
		require.NoError(t, queue.Push(i), "Push should succeed")
	}
	assert.Error(t, queue.Push(99), "overflow push should fail")
	assert.Error(t, queue.Push(99), "overflow push should fail")

	// Drain, then read past empty once
	for !queue.IsEmpty() {
		_, err := queue.Pop()
		require.NoError(t, err, "Pop should succeed")
	}
	_, err = queue.Pop()
	assert.Error(t, err, "pop on empty should fail")

	assert.Equal(t, 2.0, gatherValue(t, registry, "fifo_ring_full_rejections_total"))
	assert.Equal(t, 1.0, gatherValue(t, registry, "fifo_ring_empty_misses_total"))
	assert.Equal(t, 0.0, gatherValue(t, registry, "fifo_ring_depth"))
}

// TestQueueMetricsDisabled verifies the metrics option is ignored when
// the registry or prefix is missing, and a bare queue registers nothing.
func TestQueueMetricsDisabled(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	queueNilReg, err := NewRingBuffer[int](8, WithMetrics[int](nil, "ignored"))
	require.NoError(t, err, "nil registry should be ignored, not fail")

	queueNoPrefix, err := NewRingBuffer[int](8, WithMetrics[int](registry, ""))
	require.NoError(t, err, "empty prefix should be ignored, not fail")

	// Both queues work without metrics
	require.NoError(t, queueNilReg.Push(1), "Push should succeed")
	require.NoError(t, queueNoPrefix.Push(1), "Push should succeed")

	// Nothing queue-related reached the registry
	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err, "Gather should not fail")
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "fifo_ring_") {
			t.Errorf("Unexpected queue metric registered: %s", mf.GetName())
		}
	}
}

func TestQueueMetricsDuplicatePrefix(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	_, err := NewRingBuffer[int](8, WithMetrics[int](registry, "shared"))
	require.NoError(t, err, "first registration should succeed")

	_, err = NewRingBuffer[int](8, WithMetrics[int](registry, "shared"))
	require.Error(t, err, "second queue with the same prefix should fail")

	assert.True(t, cerrors.IsInvalid(err), "duplicate prefix should classify as invalid")
	assert.Contains(t, err.Error(), "already registered")
}

// TestQueueMetricsDistinctPrefixes verifies two queues can share one
// registry, each landing as its own series in the shared families.
func TestQueueMetricsDistinctPrefixes(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	ingest, err := NewRingBuffer[int](8, WithMetrics[int](registry, "ingest"))
	require.NoError(t, err, "ingest queue should construct")

	egress, err := NewRingBuffer[int](8, WithMetrics[int](registry, "egress"))
	require.NoError(t, err, "egress queue should construct")

	require.NoError(t, ingest.Push(1), "Push should succeed")
	require.NoError(t, egress.Push(1), "Push should succeed")
	require.NoError(t, egress.Push(2), "Push should succeed")

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err, "Gather should not fail")

	seriesCount := 0
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != "fifo_ring_pushes_total" {
			continue
		}
		seriesCount = len(mf.GetMetric())
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 2, seriesCount, "each prefix should be its own series")
	assert.Equal(t, 3.0, total, "series should count their own queues")
}
