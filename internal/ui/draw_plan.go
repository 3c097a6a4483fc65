package ui

import (
	"time"

	"github.com/ja-he/timeruler/internal/model"
)

// TimestampLabelPrefix precedes the center time in a DrawPlan's timestamp
// label.
const TimestampLabelPrefix = "Timestamp: "

// Tick is a tick mark on the ruler at a horizontal pixel offset.
// Major ticks carry a label.
type Tick struct {
	X     float64 `yaml:"x"`
	Major bool    `yaml:"major"`
	Label string  `yaml:"label,omitempty"`
}

// Label is a text label centered at a horizontal pixel offset.
type Label struct {
	X    float64 `yaml:"x"`
	Text string  `yaml:"text"`
}

// ClipMarkers is the geometry of a clip range on the ruler.
//
// A marker is only present if its end of the clip lies within the visible
// window. The band covers the visible part of the clip and is absent if the
// clip lies entirely outside the visible window.
type ClipMarkers struct {
	StartX   *float64 `yaml:"start-x,omitempty"`
	EndX     *float64 `yaml:"end-x,omitempty"`
	Band     bool     `yaml:"band"`
	BandFrom float64  `yaml:"band-from"`
	BandTo   float64  `yaml:"band-to"`
}

// DrawPlan is everything a renderer needs to draw one frame of a ruler.
// It is derived from the ruler state and holds no state of its own.
type DrawPlan struct {
	Width  float64          `yaml:"width"`
	Window model.TimeWindow `yaml:"window"`
	Zoom   float64          `yaml:"zoom"`
	Spec   model.TickSpec   `yaml:"spec"`

	Ticks  []Tick      `yaml:"ticks"`
	Labels []Label     `yaml:"labels"`
	Clip   ClipMarkers `yaml:"clip"`

	CenterX        float64 `yaml:"center-x"`
	TimestampLabel string  `yaml:"timestamp-label"`
}

// PlanInput is the ruler state a DrawPlan is computed from.
type PlanInput struct {
	Window model.TimeWindow
	Zoom   float64
	Center time.Time
	Clip   *model.ClipRange
	Width  float64
}

// NewDrawPlan computes the DrawPlan for the given state.
// It is a pure function of its input.
func NewDrawPlan(in PlanInput) DrawPlan {
	spec := model.TickSpecFor(in.Zoom)
	return DrawPlan{
		Width:          in.Width,
		Window:         in.Window,
		Zoom:           in.Zoom,
		Spec:           spec,
		Ticks:          TickGeometry(in.Window, in.Zoom, spec),
		Labels:         LabelGeometry(in.Window, in.Zoom, spec.Major),
		Clip:           ClipGeometry(in.Window, in.Zoom, in.Width, in.Clip),
		CenterX:        in.Width / 2,
		TimestampLabel: TimestampLabelPrefix + model.TimestampString(in.Center),
	}
}

// TickGeometry returns the ticks at every minor interval within the window,
// marking (and labeling) those that fall onto the major interval.
func TickGeometry(window model.TimeWindow, zoom float64, spec model.TickSpec) []Tick {
	ticks := []Tick{}
	// Starting on a minor rather than a major boundary only drops ticks left
	// of the window; every major interval is a multiple of the minor one.
	for t := range model.EnumerateTicks(window.Start, window.End, spec.Minor) {
		tick := Tick{
			X:     model.SecondsToPixels(t-window.Start, zoom),
			Major: model.IsMajor(t, spec.Major),
		}
		if tick.Major {
			tick.Label = model.ClockString(t)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// LabelGeometry returns the clock labels for every major interval within the
// window.
func LabelGeometry(window model.TimeWindow, zoom float64, majorInterval float64) []Label {
	labels := []Label{}
	for t := range model.EnumerateTicks(window.Start, window.End, majorInterval) {
		labels = append(labels, Label{
			X:    model.SecondsToPixels(t-window.Start, zoom),
			Text: model.ClockString(t),
		})
	}
	return labels
}

// ClipGeometry returns the marker and band geometry of the given clip within
// the window, on a ruler of the given width.
func ClipGeometry(window model.TimeWindow, zoom float64, width float64, clip *model.ClipRange) ClipMarkers {
	if clip == nil {
		return ClipMarkers{}
	}

	start := model.ToSeconds(clip.Start())
	end := model.ToSeconds(clip.End())
	if start > window.End || end < window.Start {
		return ClipMarkers{}
	}

	result := ClipMarkers{Band: true, BandFrom: 0, BandTo: width}
	if start > window.Start {
		x := model.SecondsToPixels(start-window.Start, zoom)
		result.StartX = &x
		result.BandFrom = x
	}
	if end < window.End {
		x := model.SecondsToPixels(end-window.Start, zoom)
		result.EndX = &x
		result.BandTo = x
	}
	return result
}
