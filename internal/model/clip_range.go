package model

import (
	"fmt"
	"math"
	"time"
)

// HitboxWidth is the distance in pixels within which a pointer counts as
// being on a clip marker.
const HitboxWidth = 10

// MinClipLength is the minimum separation between the start and end of a
// clip range.
const MinClipLength = 1 * time.Second

// InitialClipHalfSpan is how far a fresh clip range extends to either side
// of the initial center time.
const InitialClipHalfSpan = 10000 * time.Hour

// ClipRange is a selected range of time delimited by a draggable start and end
// marker. It is independent of what is currently visible.
//
// Start is always before End; mutations that would violate this are clamped
// such that the two are MinClipLength apart.
type ClipRange struct {
	start time.Time
	end   time.Time
}

// NewClipRange constructs a clip range from start to end.
// Returns an error if start is not before end.
func NewClipRange(start, end time.Time) (*ClipRange, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("clip start (%s) must be before clip end (%s)", TimestampString(start), TimestampString(end))
	}
	return &ClipRange{start: start, end: end}, nil
}

// NewClipRangeAround constructs a clip range spanning the given duration to
// either side of the given time.
func NewClipRangeAround(center time.Time, halfSpan time.Duration) *ClipRange {
	if halfSpan <= 0 {
		halfSpan = MinClipLength
	}
	return &ClipRange{start: center.Add(-halfSpan), end: center.Add(halfSpan)}
}

// Start returns the start of the clip range.
func (c *ClipRange) Start() time.Time { return c.start }

// End returns the end of the clip range.
func (c *ClipRange) End() time.Time { return c.end }

// Duration returns the length of the clip range.
func (c *ClipRange) Duration() time.Duration { return c.end.Sub(c.start) }

// HitTestStart returns whether the given pointer x-position is on the start
// marker, given the visible window and the zoom.
// A start marker before the visible window cannot be hit.
func (c *ClipRange) HitTestStart(pointerX float64, window TimeWindow, zoom float64) bool {
	start := ToSeconds(c.start)
	if start < window.Start {
		return false
	}
	return withinHitbox(pointerX, SecondsToPixels(start-window.Start, zoom))
}

// HitTestEnd returns whether the given pointer x-position is on the end
// marker, given the visible window and the zoom.
// An end marker after the visible window cannot be hit.
func (c *ClipRange) HitTestEnd(pointerX float64, window TimeWindow, zoom float64) bool {
	end := ToSeconds(c.end)
	if end > window.End {
		return false
	}
	return withinHitbox(pointerX, SecondsToPixels(end-window.Start, zoom))
}

func withinHitbox(pointerX, markerX float64) bool {
	return math.Abs(pointerX-markerX) <= HitboxWidth
}

// DragStart moves the start marker by the given number of seconds.
// If the start would no longer be before the end, the start is instead placed
// MinClipLength before the end and false is returned.
func (c *ClipRange) DragStart(deltaSeconds float64) (accepted bool) {
	proposed := c.start.Add(SecondsToDuration(deltaSeconds))
	if proposed.Before(c.end) {
		c.start = proposed
		return true
	}
	c.start = c.end.Add(-MinClipLength)
	return false
}

// DragEnd moves the end marker by the given number of seconds.
// If the end would no longer be after the start, the end is instead placed
// MinClipLength after the start and false is returned.
func (c *ClipRange) DragEnd(deltaSeconds float64) (accepted bool) {
	proposed := c.end.Add(SecondsToDuration(deltaSeconds))
	if proposed.After(c.start) {
		c.end = proposed
		return true
	}
	c.end = c.start.Add(MinClipLength)
	return false
}
