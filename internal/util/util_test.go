package util

import (
	"testing"
	"time"
)

func TestTruncateAt(t *testing.T) {
	input := "aaaaabbbbbcccccddddd"
	for _, tc := range []struct {
		name     string
		length   int
		expected string
	}{
		{"regular string truncation", 15, "aaaaabbbbbcc..."},
		{"no truncation needed", 40, input},
		{"just barely no truncation needed", 20, input},
		{"just barely truncation needed", 19, "aaaaabbbbbcccccd..."},
		{"only truncation remaining", 3, "..."},
		{"only truncation remaining (1)", 1, "."},
		{"nothing remaining", 0, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if result := TruncateAt(input, tc.length); result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	for _, p := range [][2]int{{2, 1}, {4, 2}} {
		if !r.Contains(p[0], p[1]) {
			t.Error("expected rect to contain", p)
		}
	}
	for _, p := range [][2]int{{1, 1}, {5, 1}, {2, 3}, {2, 0}} {
		if r.Contains(p[0], p[1]) {
			t.Error("expected rect not to contain", p)
		}
	}
}

func TestMetricsHandler(t *testing.T) {
	h := MetricsHandler{}
	if h.Avg() != 0 || h.GetLast() != 0 {
		t.Error("expected zero metrics initially")
	}

	h.Add(2 * time.Millisecond)
	h.Add(4 * time.Millisecond)
	if h.GetLast() != 4*time.Millisecond {
		t.Error("unexpected last value", h.GetLast())
	}
	if h.Avg() != 3*time.Millisecond {
		t.Error("average should only cover added values, got", h.Avg())
	}

	for i := 0; i < 2*metricsBufferSize; i++ {
		h.Add(time.Millisecond)
	}
	if h.Avg() != time.Millisecond {
		t.Error("old values should have been overwritten, got avg", h.Avg())
	}
}

func TestPadCenter(t *testing.T) {
	for _, tc := range []struct {
		input    string
		width    int
		expected string
	}{
		{"info", 8, "  info  "},
		{"warn", 7, " warn  "},
		{"error", 5, "error"},
		{"error", 3, "error"},
		{"", 2, "  "},
	} {
		if result := PadCenter(tc.input, tc.width); result != tc.expected {
			t.Errorf("PadCenter(%q, %d): expected %q, got %q", tc.input, tc.width, tc.expected, result)
		}
	}
}
