package util

import "time"

const metricsBufferSize = 256

// MetricsGetter allows access to tracked performance metrics.
type MetricsGetter interface {
	Avg() time.Duration
	GetLast() time.Duration
}

// MetricsHandler stores tracked performance metrics (e.g. render times) in a
// ring buffer and computes a rolling average over them.
type MetricsHandler struct {
	values [metricsBufferSize]time.Duration
	index  int
	count  int
}

// GetLast returns the most recently added value.
func (h *MetricsHandler) GetLast() time.Duration {
	return h.values[h.index]
}

// Add inserts a new value into the ring buffer.
func (h *MetricsHandler) Add(value time.Duration) {
	if h.count > 0 {
		h.index = (h.index + 1) % metricsBufferSize
	}
	h.values[h.index] = value
	if h.count < metricsBufferSize {
		h.count++
	}
}

// Avg returns the average over the values in the ring buffer, or 0 if none
// were added.
func (h *MetricsHandler) Avg() time.Duration {
	if h.count == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, v := range h.values[:h.count] {
		sum += v
	}
	return sum / time.Duration(h.count)
}
