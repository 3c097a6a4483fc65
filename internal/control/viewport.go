package control

import (
	"time"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
)

// DragMode is the kind of drag currently in progress on a ruler.
type DragMode int

const (
	_ DragMode = iota
	// DragModeIdle means no pointer button is held.
	DragModeIdle
	// DragModePanning means the view is being dragged along the time axis.
	DragModePanning
	// DragModeClipStart means the start marker of the clip is being dragged.
	DragModeClipStart
	// DragModeClipEnd means the end marker of the clip is being dragged.
	DragModeClipEnd
)

// ToString returns the name of this drag mode, primarily for debugging and
// logging purposes.
func (m DragMode) ToString() string {
	switch m {
	case DragModeIdle:
		return "idle"
	case DragModePanning:
		return "panning"
	case DragModeClipStart:
		return "clip-start"
	case DragModeClipEnd:
		return "clip-end"
	}
	return "[unknown]"
}

// PointerPos is a pointer position on the ruler's surface, with its origin
// 0,0 in the top left.
type PointerPos struct {
	X, Y float64
}

// DragState is the drag in progress (if any) along with the position the
// pointer was last accounted for at.
// The anchor is only meaningful while the mode is not DragModeIdle.
type DragState struct {
	Mode   DragMode
	Anchor PointerPos
}

// ViewportController owns the center time, the zoom and the drag state of a
// ruler, and the clip range shown on it.
// It resolves pointer input into panning, zooming or dragging of the clip
// markers.
//
// A ViewportController is not safe for concurrent use.
type ViewportController struct {
	center time.Time
	zoom   float64
	drag   DragState

	clip *model.ClipRange
}

// NewViewportController constructs a controller centered on the given time at
// the initial zoom, showing the given clip.
func NewViewportController(center time.Time, clip *model.ClipRange) *ViewportController {
	return &ViewportController{
		center: center,
		zoom:   model.InitialZoom,
		drag:   DragState{Mode: DragModeIdle},
		clip:   clip,
	}
}

// Center returns the time at the horizontal middle of the ruler.
func (c *ViewportController) Center() time.Time { return c.center }

// Zoom returns the current zoom in pixels per second.
func (c *ViewportController) Zoom() float64 { return c.zoom }

// Drag returns the current drag state.
func (c *ViewportController) Drag() DragState { return c.drag }

// Clip returns the clip range.
func (c *ViewportController) Clip() *model.ClipRange { return c.clip }

// SetZoom sets the zoom, clamped to the allowed range.
func (c *ViewportController) SetZoom(zoom float64) {
	c.zoom = model.ClampZoom(zoom)
}

// VisibleWindow returns the range of time visible on a ruler of the given
// width in pixels.
func (c *ViewportController) VisibleWindow(width float64) model.TimeWindow {
	viewStart := model.ToSeconds(c.center) - model.PixelsToSeconds(width/2, c.zoom)
	viewEnd := viewStart + model.PixelsToSeconds(width, c.zoom)
	return model.TimeWindow{Start: viewStart, End: viewEnd}
}

// TimeAt gives the time under column x of a ruler of the given width, and
// false if x lies outside the ruler.
func (c *ViewportController) TimeAt(x, width float64) (time.Time, bool) {
	window := c.VisibleWindow(width)
	seconds := window.Start + model.PixelsToSeconds(x, c.zoom)
	if !window.Contains(seconds) {
		return time.Time{}, false
	}
	return model.FromSeconds(seconds), true
}

// PointerDown starts a drag at the given position on a ruler of the given
// width. If the position is on a clip marker, that marker is dragged (the
// start marker taking precedence), otherwise the view is panned.
func (c *ViewportController) PointerDown(x, y, width float64) {
	window := c.VisibleWindow(width)

	mode := DragModePanning
	switch {
	case c.clip.HitTestStart(x, window, c.zoom):
		mode = DragModeClipStart
	case c.clip.HitTestEnd(x, window, c.zoom):
		mode = DragModeClipEnd
	}

	c.drag = DragState{Mode: mode, Anchor: PointerPos{X: x, Y: y}}
}

// PointerMove continues the drag in progress (if any) to the given position.
//
// A clip marker drag only advances the anchor if the marker moved freely; a
// clamped marker keeps the anchor so the marker does not drift away from the
// pointer.
func (c *ViewportController) PointerMove(x, y float64) {
	if c.drag.Mode == DragModeIdle {
		return
	}

	deltaSeconds := model.PixelsToSeconds(x-c.drag.Anchor.X, c.zoom)
	pos := PointerPos{X: x, Y: y}

	switch c.drag.Mode {
	case DragModeClipStart:
		if c.clip.DragStart(deltaSeconds) {
			c.drag.Anchor = pos
		}
	case DragModeClipEnd:
		if c.clip.DragEnd(deltaSeconds) {
			c.drag.Anchor = pos
		}
	case DragModePanning:
		// dragging right reveals earlier time
		c.center = c.center.Add(-model.SecondsToDuration(deltaSeconds))
		c.drag.Anchor = pos
	}
}

// PointerUp ends any drag in progress.
func (c *ViewportController) PointerUp() {
	c.drag = DragState{Mode: DragModeIdle}
}

// Wheel zooms out for positive deltaY (scrolling down), and in otherwise.
// Zoom is anchored at the center of the ruler.
func (c *ViewportController) Wheel(deltaY float64) {
	if deltaY > 0 {
		c.ZoomOut()
	} else {
		c.ZoomIn()
	}
}

// ZoomIn increases the zoom by one step.
func (c *ViewportController) ZoomIn() {
	c.SetZoom(c.zoom * model.ZoomInFactor)
}

// ZoomOut decreases the zoom by one step.
func (c *ViewportController) ZoomOut() {
	c.SetZoom(c.zoom * model.ZoomOutFactor)
}

// ResetZoom returns to the initial zoom.
func (c *ViewportController) ResetZoom() {
	c.SetZoom(model.InitialZoom)
}

// PanBy moves the center by the given number of seconds (forward in time for
// positive values).
func (c *ViewportController) PanBy(seconds float64) {
	c.center = c.center.Add(model.SecondsToDuration(seconds))
}

// PanByMajorTicks moves the center by the given number of major tick
// intervals at the current zoom.
func (c *ViewportController) PanByMajorTicks(n int) {
	c.PanBy(float64(n) * model.MajorInterval(c.zoom))
}

// CenterOn moves the center to the given time.
func (c *ViewportController) CenterOn(t time.Time) {
	c.center = t
}

// CenterOnClip moves the center to the middle of the clip range.
func (c *ViewportController) CenterOnClip() {
	c.center = c.clip.Start().Add(c.clip.Duration() / 2)
}

// Plan returns the draw plan for the current state on a ruler of the given
// width. Calling it does not change any state.
func (c *ViewportController) Plan(width float64) ui.DrawPlan {
	return ui.NewDrawPlan(ui.PlanInput{
		Window: c.VisibleWindow(width),
		Zoom:   c.zoom,
		Center: c.center,
		Clip:   c.clip,
		Width:  width,
	})
}
