package ui

import (
	"github.com/ja-he/timeruler/internal/styling"
)

// LeafPane is the common part of all panes that draw themselves (as opposed
// to the root pane, which only draws its subpanes): a renderer constrained to
// the pane, the pane's dimensions and the stylesheet to draw with.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}
