package ui

import "github.com/ja-he/timeruler/internal/styling"

// CR is a ConstrainedRenderer that forwards to another renderer, clipping
// each request to a rectangle it re-reads on every call. Requests entirely
// outside that rectangle are dropped.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer wraps renderer, clipping to constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions gives the clip rectangle.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText clips the text box and forwards it.
func (r *CR) DrawText(x, y, w, h int, styling styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawText(cx, cy, cw, ch, styling, text)
}

// DrawBox clips the box and forwards it.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, sty)
}

func (r *CR) constrain(x, y, w, h int) (int, int, int, int) {
	bx, by, bw, bh := r.constraint()
	x, w = clipSpan(x, w, bx, bw)
	y, h = clipSpan(y, h, by, bh)
	return x, y, w, h
}

// clipSpan intersects [pos, pos+size) with [lo, lo+span). The resulting size
// is non-positive if they do not overlap.
func clipSpan(pos, size, lo, span int) (int, int) {
	end := min(pos+size, lo+span)
	pos = max(pos, lo)
	return pos, end - pos
}
