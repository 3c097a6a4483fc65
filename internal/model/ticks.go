package model

import (
	"fmt"
	"iter"
	"math"
)

// majorTickEpsilon is the tolerance within which a tick position counts as a
// multiple of the major interval.
const majorTickEpsilon = 0.001

// TickSpec describes the intervals (in seconds) between major and minor ticks
// on a ruler.
type TickSpec struct {
	Major float64 `yaml:"major"`
	Minor float64 `yaml:"minor"`
}

// TickSpecFor returns the tick spec for the given zoom.
func TickSpecFor(zoom float64) TickSpec {
	return TickSpec{
		Major: MajorInterval(zoom),
		Minor: MinorInterval(zoom),
	}
}

// MajorInterval returns the interval in seconds between major (labeled) ticks
// for the given zoom in pixels per second.
func MajorInterval(zoom float64) float64 {
	switch {
	case zoom > 0.99:
		return 60
	case zoom > 0.45:
		return 300
	case zoom > 0.2:
		return 600
	case zoom > 0.1:
		return 900
	case zoom > 0.05:
		return 1800
	default:
		return 3600
	}
}

// MinorInterval returns the interval in seconds between minor ticks for the
// given zoom in pixels per second.
//
// NOTE: the breakpoints deliberately differ from those of MajorInterval.
func MinorInterval(zoom float64) float64 {
	switch {
	case zoom > 0.99:
		return 5
	case zoom > 0.45:
		return 30
	case zoom > 0.1:
		return 60
	default:
		return 300
	}
}

// EnumerateTicks yields the tick positions (seconds since the epoch) of the
// given interval, starting at the last multiple of interval at or before
// viewStart and ending at the last one not after viewEnd.
//
// The returned sequence can be iterated any number of times.
func EnumerateTicks(viewStart, viewEnd, interval float64) iter.Seq[float64] {
	if !(interval > 0) {
		panic(fmt.Sprintf("tick interval must be positive, got %f", interval))
	}
	first := math.Floor(viewStart/interval) * interval
	return func(yield func(float64) bool) {
		for i := 0; ; i++ {
			t := first + float64(i)*interval
			if t > viewEnd {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// IsMajor returns whether a tick at the given position falls onto the given
// major interval.
func IsMajor(t, majorInterval float64) bool {
	return math.Abs(math.Mod(t, majorInterval)) < majorTickEpsilon
}
