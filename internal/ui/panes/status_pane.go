package panes

import (
	"fmt"
	"strings"
	"time"

	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// StatusPane is a status bar that displays the zoom, the tick intervals, the
// drag in progress, the time under the mouse cursor and the clip range.
type StatusPane struct {
	ui.LeafPane

	zoom     func() float64
	dragMode func() control.DragMode
	clip     func() *model.ClipRange
	cursor   func() (time.Time, bool)
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	if w <= 0 || h <= 0 {
		return
	}

	bgStyle := p.Stylesheet.Status
	emphStyle := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	zoom := p.zoom()
	spec := model.TickSpecFor(zoom)
	left := fmt.Sprintf(
		" zoom %.4f px/s  ticks %s/%s ",
		zoom,
		IntervalString(spec.Major),
		IntervalString(spec.Minor),
	)
	p.Renderer.DrawText(x, y, w, 1, bgStyle, util.TruncateAt(left, w))

	modeStr := fmt.Sprintf("-- %s --", strings.ToUpper(p.dragMode().ToString()))
	modeX := x + len([]rune(left))
	p.Renderer.DrawText(modeX, y, w-(modeX-x), 1, emphStyle.Italicized(), modeStr)
	usedX := modeX + len(modeStr)

	if at, ok := p.cursor(); ok {
		cursorStr := fmt.Sprintf(" at %s", model.ClockString(model.ToSeconds(at)))
		p.Renderer.DrawText(usedX, y, w-(usedX-x), 1, bgStyle, cursorStr)
		usedX += len(cursorStr)
	}

	clip := p.clip()
	if clip == nil {
		return
	}
	right := fmt.Sprintf(
		" clip %s → %s (%s) ",
		model.TimestampString(clip.Start()),
		model.TimestampString(clip.End()),
		IntervalString(clip.Duration().Seconds()),
	)
	rightWidth := len([]rune(right))
	if rightX := x + w - rightWidth; rightX > usedX {
		p.Renderer.DrawText(rightX, y, rightWidth, 1, emphStyle, right)
	}
}

// IntervalString formats a number of seconds compactly, e.g. "1h", "5m" or
// "1h30m".
func IntervalString(seconds float64) string {
	s := model.SecondsToDuration(seconds).String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	zoom func() float64,
	dragMode func() control.DragMode,
	clip func() *model.ClipRange,
	cursor func() (time.Time, bool),
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		zoom:     zoom,
		dragMode: dragMode,
		clip:     clip,
		cursor:   cursor,
	}
}
