package model

// Zoom bounds in pixels per second.
// At MinZoom a pixel covers 45 seconds, at MaxZoom a pixel covers one second.
const (
	MinZoom = 80.0 / 3600.0
	MaxZoom = 1.0

	// InitialZoom is the zoom a fresh ruler starts out at.
	InitialZoom = MinZoom
)

// Factors by which a single zoom step changes the zoom.
const (
	ZoomOutFactor = 0.9
	ZoomInFactor  = 1.1
)

// ClampZoom returns the given zoom limited to [MinZoom, MaxZoom].
func ClampZoom(zoom float64) float64 {
	switch {
	case zoom < MinZoom:
		return MinZoom
	case zoom > MaxZoom:
		return MaxZoom
	default:
		return zoom
	}
}
