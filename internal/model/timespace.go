package model

import (
	"fmt"
	"math"
	"time"
)

// A TimeWindow is a range of time in seconds since the epoch, e.g. the range
// currently visible on a ruler.
// It is derived from a center time and a zoom and is never stored.
type TimeWindow struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// Contains returns whether the given time (in seconds since the epoch) lies
// within the window, boundaries included.
func (w TimeWindow) Contains(seconds float64) bool {
	return seconds >= w.Start && seconds <= w.End
}

// ToSeconds converts the given time to (fractional) seconds since the epoch.
func ToSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

// FromSeconds converts (fractional) seconds since the epoch to a time in the
// local zone. Precision is limited to nanoseconds.
func FromSeconds(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(math.Round(frac*float64(time.Second)))).Local()
}

// PixelsToSeconds converts a distance in pixels to a duration in seconds at
// the given zoom (pixels per second).
func PixelsToSeconds(pixels, zoom float64) float64 {
	mustBePositiveZoom(zoom)
	return pixels / zoom
}

// SecondsToPixels converts a duration in seconds to a distance in pixels at
// the given zoom (pixels per second).
func SecondsToPixels(seconds, zoom float64) float64 {
	mustBePositiveZoom(zoom)
	return seconds * zoom
}

// SecondsToDuration converts (fractional) seconds to a time.Duration.
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

func mustBePositiveZoom(zoom float64) {
	if !(zoom > 0) {
		panic(fmt.Sprintf("zoom must be positive, got %f", zoom))
	}
}
